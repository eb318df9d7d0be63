package group

// LegacyStandardNames maps historical standard UUIDs to display names for
// data created before the standards library migration. The table is a
// compatibility shim: entries must be preserved verbatim, and new standards
// must never be added here; they resolve through the standards lookup.
//
// Version 1: the five standards present in the pre-migration database.
func LegacyStandardNames() map[string]string {
	return map[string]string{
		"55742f4e-769b-4efe-912c-1371de5e1cd6": "ISO/IEC 27001 2022",
		"8508cfb0-3457-4226-b39a-851be52ef7ea": "ISO/IEC 27002 2022",
		"afe9728d-2084-4b6b-8653-b04e1e92cdff": "CIS Controls IG1",
		"05501cbc-c463-4668-ae84-9acb1a4d5332": "CIS Controls IG2",
		"b1d9e82f-b0c3-40e2-89d7-4c51e216214e": "CIS Controls IG3",
	}
}
