package fixture

import (
	"runtime"
	"runtime/debug"
)

// Reference library module paths recorded in provenance.
var provenanceDeps = []string{
	"github.com/MeKo-Christian/algo-fft",
	"github.com/cwbudde/algo-vecmath",
	"github.com/mjibson/go-dsp",
	"gonum.org/v1/gonum",
}

// Provenance identifies the generating tool and environment. Together with
// the seed it is sufficient to reproduce a document's numeric content.
type Provenance struct {
	Tool     string            `json:"tool"`
	Seed     int64             `json:"seed"`
	Go       string            `json:"go"`
	Deps     map[string]string `json:"deps"`
	Platform string            `json:"platform"`
}

// NewProvenance builds provenance for the named tool. Reference library
// versions are taken from the embedded build info when present.
func NewProvenance(tool string, seed int64) Provenance {
	deps := make(map[string]string, len(provenanceDeps))
	for _, path := range provenanceDeps {
		deps[path] = "unknown"
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if _, wanted := deps[dep.Path]; wanted {
				deps[dep.Path] = dep.Version
			}
		}
	}

	return Provenance{
		Tool:     tool,
		Seed:     seed,
		Go:       runtime.Version(),
		Deps:     deps,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}
