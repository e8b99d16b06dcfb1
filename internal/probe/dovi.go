package probe

import "strings"

// dolbyVision scans a stream's side-data list for Dolby Vision metadata.
// The first entry whose type tag contains "dovi" or "dolby vision"
// (case-insensitive) wins; later DV-tagged entries are ignored. An empty
// or absent list yields the all-absent info with Present=false.
func dolbyVision(sideData []ffprobeSideData) DolbyVisionInfo {
	for i := range sideData {
		tag := strings.ToLower(sideData[i].Type)
		if !strings.Contains(tag, "dovi") && !strings.Contains(tag, "dolby vision") {
			continue
		}
		return DolbyVisionInfo{
			Present:                 true,
			Profile:                 sideData[i].DVProfile,
			ELPresent:               sideData[i].ELPresentFlag,
			BLPresent:               sideData[i].BLPresentFlag,
			BLSignalCompatibilityID: sideData[i].BLSignalCompatibilityID,
		}
	}
	return DolbyVisionInfo{}
}
