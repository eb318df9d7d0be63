package library

import "github.com/coolbeans/attest/pkg/types"

// SeedDefinitions returns the built-in standard set: the standards present
// in the pre-migration database, under their historical IDs, each with a
// representative requirement catalog. Requirement IDs are deterministic
// (standard ID + control code) so re-seeding is idempotent.
func SeedDefinitions() []*StandardDefinition {
	return []*StandardDefinition{
		{
			Standard: types.Standard{
				ID:       "55742f4e-769b-4efe-912c-1371de5e1cd6",
				Name:     "ISO/IEC 27001",
				Version:  "2022",
				Category: "Information Security Management",
			},
			Requirements: []types.Requirement{
				seedRequirement("55742f4e-769b-4efe-912c-1371de5e1cd6", "A.5", "A.5.1", "Policies for information security", "Information security policy and topic-specific policies shall be defined, approved by management, published and reviewed."),
				seedRequirement("55742f4e-769b-4efe-912c-1371de5e1cd6", "A.5", "A.5.9", "Inventory of information and other associated assets", "An inventory of information and other associated assets, including owners, shall be developed and maintained."),
				seedRequirement("55742f4e-769b-4efe-912c-1371de5e1cd6", "A.6", "A.6.3", "Information security awareness, education and training", "Personnel shall receive appropriate information security awareness, education and training."),
				seedRequirement("55742f4e-769b-4efe-912c-1371de5e1cd6", "A.8", "A.8.8", "Management of technical vulnerabilities", "Information about technical vulnerabilities of information systems in use shall be obtained and appropriate measures taken."),
				seedRequirement("55742f4e-769b-4efe-912c-1371de5e1cd6", "A.8", "A.8.13", "Information backup", "Backup copies of information, software and systems shall be maintained and regularly tested."),
			},
		},
		{
			Standard: types.Standard{
				ID:       "8508cfb0-3457-4226-b39a-851be52ef7ea",
				Name:     "ISO/IEC 27002",
				Version:  "2022",
				Category: "Information Security Controls",
			},
			Requirements: []types.Requirement{
				seedRequirement("8508cfb0-3457-4226-b39a-851be52ef7ea", "5", "5.1", "Policies for information security", "Guidance on defining, approving and reviewing the information security policy."),
				seedRequirement("8508cfb0-3457-4226-b39a-851be52ef7ea", "5", "5.7", "Threat intelligence", "Information relating to information security threats should be collected and analysed to produce threat intelligence."),
				seedRequirement("8508cfb0-3457-4226-b39a-851be52ef7ea", "8", "8.2", "Privileged access rights", "The allocation and use of privileged access rights should be restricted and managed."),
				seedRequirement("8508cfb0-3457-4226-b39a-851be52ef7ea", "8", "8.24", "Use of cryptography", "Rules for the effective use of cryptography, including key management, should be defined and implemented."),
			},
		},
		{
			Standard: types.Standard{
				ID:       "afe9728d-2084-4b6b-8653-b04e1e92cdff",
				Name:     "CIS Controls IG1",
				Version:  "v8",
				Category: "Cyber Hygiene",
			},
			Requirements: []types.Requirement{
				seedRequirement("afe9728d-2084-4b6b-8653-b04e1e92cdff", "1", "1.1", "Establish and Maintain Detailed Enterprise Asset Inventory", "Establish and maintain an accurate, detailed and up-to-date inventory of all enterprise assets."),
				seedRequirement("afe9728d-2084-4b6b-8653-b04e1e92cdff", "2", "2.1", "Establish and Maintain a Software Inventory", "Establish and maintain a detailed inventory of all licensed software installed on enterprise assets."),
				seedRequirement("afe9728d-2084-4b6b-8653-b04e1e92cdff", "4", "4.1", "Establish and Maintain a Secure Configuration Process", "Establish and maintain a secure configuration process for enterprise assets and software."),
				seedRequirement("afe9728d-2084-4b6b-8653-b04e1e92cdff", "5", "5.2", "Use Unique Passwords", "Use unique passwords for all enterprise assets."),
				seedRequirement("afe9728d-2084-4b6b-8653-b04e1e92cdff", "14", "14.1", "Establish and Maintain a Security Awareness Program", "Establish and maintain a security awareness program to influence behavior among the workforce."),
			},
		},
		{
			Standard: types.Standard{
				ID:       "05501cbc-c463-4668-ae84-9acb1a4d5332",
				Name:     "CIS Controls IG2",
				Version:  "v8",
				Category: "Cyber Hygiene",
			},
			Requirements: []types.Requirement{
				seedRequirement("05501cbc-c463-4668-ae84-9acb1a4d5332", "3", "3.12", "Segment Data Processing and Storage Based on Sensitivity", "Segment data processing and storage based on the sensitivity of the data."),
				seedRequirement("05501cbc-c463-4668-ae84-9acb1a4d5332", "12", "12.2", "Establish and Maintain a Secure Network Architecture", "Design and maintain a secure network architecture with segmentation and least privilege."),
				seedRequirement("05501cbc-c463-4668-ae84-9acb1a4d5332", "13", "13.2", "Deploy a Host-Based Intrusion Detection Solution", "Deploy a host-based intrusion detection solution on enterprise assets, where appropriate."),
			},
		},
		{
			Standard: types.Standard{
				ID:       "b1d9e82f-b0c3-40e2-89d7-4c51e216214e",
				Name:     "CIS Controls IG3",
				Version:  "v8",
				Category: "Cyber Hygiene",
			},
			Requirements: []types.Requirement{
				seedRequirement("b1d9e82f-b0c3-40e2-89d7-4c51e216214e", "3", "3.14", "Log Sensitive Data Access", "Log sensitive data access, including modification and disposal."),
				seedRequirement("b1d9e82f-b0c3-40e2-89d7-4c51e216214e", "13", "13.7", "Deploy a Host-Based Intrusion Prevention Solution", "Deploy a host-based intrusion prevention solution on enterprise assets, where appropriate."),
				seedRequirement("b1d9e82f-b0c3-40e2-89d7-4c51e216214e", "16", "16.13", "Conduct Application Penetration Testing", "Conduct application penetration testing on a periodic basis."),
			},
		},
	}
}

// Seed adds any built-in standards missing from the library. Standards
// already present are left untouched.
func Seed(lib *Library) (added int, err error) {
	for _, definition := range SeedDefinitions() {
		if _, ok := lib.GetStandard(definition.Standard.ID); ok {
			continue
		}
		if err := lib.AddStandard(definition); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func seedRequirement(standardID, section, code, name, description string) types.Requirement {
	return types.Requirement{
		ID:          standardID + "/" + code,
		StandardID:  standardID,
		Section:     section,
		Code:        code,
		Name:        name,
		Description: description,
		Status:      types.StatusNotFulfilled,
	}
}
