package embedded

import _ "embed"

// DefaultConfig is used when the server is started without a config file.
//
//go:embed "configs/server.toml"
var DefaultConfig []byte
