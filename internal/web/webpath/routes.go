package webpath

const (
	Api = "/api"

	ApiKFactor  = Api + "/kfactor"
	ApiBounds   = Api + "/bounds"
	ApiExpected = Api + "/expected"
	ApiRating   = Api + "/rating"
	ApiMatch    = Api + "/match"
)
