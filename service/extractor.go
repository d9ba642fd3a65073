package service

import "github.com/CycloneDX/cyclonedx-go"

// ExtractPurls returns the distinct package URLs of bom's components, in
// document order. Components without a purl cannot be keyed into the tree
// and are skipped.
func ExtractPurls(bom *cyclonedx.BOM) []string {
	if bom == nil || bom.Components == nil {
		return nil
	}

	seen := make(map[string]bool, len(*bom.Components))
	var purls []string
	for _, comp := range *bom.Components {
		if comp.PackageURL == "" || seen[comp.PackageURL] {
			continue
		}
		seen[comp.PackageURL] = true
		purls = append(purls, comp.PackageURL)
	}
	return purls
}
