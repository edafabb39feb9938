package version

var (
	Version = "0.3.0-dev"

	// git hash should be filled by:
	// 	go build -ldflags="-X github.com/housegraph/housegraph/version.GitHash=xxxx"

	GitHash   = "dev snapshot"
	BuildDate string
)
