package paramfetch

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// paramsSuffix names full proving-parameter files; everything else in the
// manifest (".vk" files) is a verification key.
const paramsSuffix = ".params"

// ParameterMap maps a parameter file name to its expected identity.
type ParameterMap map[string]ParameterData

// ParameterData describes one parameter file: the content id it is fetched
// by, the truncated blake2b digest of its content, and the sector size it
// serves.
type ParameterData struct {
	Cid        string `json:"cid"`
	Digest     string `json:"digest"`
	SectorSize uint64 `json:"sector_size"`
}

func parseManifest(manifestJSON []byte) (ParameterMap, error) {
	var params ParameterMap
	if err := json.Unmarshal(manifestJSON, &params); err != nil {
		return nil, fmt.Errorf("parsing parameter manifest: %w", err)
	}
	return params, nil
}

type manifestEntry struct {
	name string
	info ParameterData
}

// filterManifest returns the entries selected by opt, sorted by name so a
// given manifest and selection always yield the same entries in the same
// order.
func filterManifest(params ParameterMap, opt SectorSizeOpt) []manifestEntry {
	selected := make([]manifestEntry, 0, len(params))
	for name, info := range params {
		switch opt.mode {
		case selectKeys:
			if strings.HasSuffix(name, paramsSuffix) {
				continue
			}
		case selectSize:
			if strings.HasSuffix(name, paramsSuffix) && info.SectorSize != opt.size {
				continue
			}
		}
		selected = append(selected, manifestEntry{name: name, info: info})
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].name < selected[j].name })
	return selected
}
