package report

import "testing"

func TestParseAttachmentsWorkedExample(t *testing.T) {
	evidence := "📎 Attached Evidence Files:\n• report.pdf (2.40 MB)\n• scan.png (512.00 KB)"

	attachments := ParseAttachments(evidence)

	if len(attachments) != 2 {
		t.Fatalf("Expected 2 attachments, got %d", len(attachments))
	}

	if attachments[0].Filename != "report.pdf" {
		t.Errorf("Expected filename report.pdf, got %q", attachments[0].Filename)
	}
	if attachments[0].Size != "2.40 MB" {
		t.Errorf("Expected size 2.40 MB, got %q", attachments[0].Size)
	}
	if attachments[0].Type != "PDF" {
		t.Errorf("Expected type PDF, got %q", attachments[0].Type)
	}

	if attachments[1].Filename != "scan.png" {
		t.Errorf("Expected filename scan.png, got %q", attachments[1].Filename)
	}
	if attachments[1].Size != "512.00 KB" {
		t.Errorf("Expected size 512.00 KB, got %q", attachments[1].Size)
	}
	if attachments[1].Type != "PNG" {
		t.Errorf("Expected type PNG, got %q", attachments[1].Type)
	}
}

func TestParseAttachmentsTextHeader(t *testing.T) {
	evidence := "Attached Evidence Files:\n• policy.docx (signed copy, 1.2 MB)"

	attachments := ParseAttachments(evidence)

	if len(attachments) != 1 {
		t.Fatalf("Expected 1 attachment, got %d", len(attachments))
	}
	if attachments[0].Description != "signed copy" {
		t.Errorf("Expected description %q, got %q", "signed copy", attachments[0].Description)
	}
	if attachments[0].Size != "1.2 MB" {
		t.Errorf("Expected size 1.2 MB, got %q", attachments[0].Size)
	}
	if attachments[0].Type != "DOCX" {
		t.Errorf("Expected type DOCX, got %q", attachments[0].Type)
	}
}

func TestParseAttachmentsNoMarker(t *testing.T) {
	evidence := "We interviewed the operations team and reviewed firewall configs.\n• not an attachment (really)"

	attachments := ParseAttachments(evidence)

	if len(attachments) != 0 {
		t.Errorf("Expected no attachments without a header, got %d", len(attachments))
	}
}

func TestParseAttachmentsEmptyAndMalformed(t *testing.T) {
	cases := []string{
		"",
		"📎 Attached Evidence Files:",
		"📎 Attached Evidence Files:\n• missing parentheses",
		"📎 Attached Evidence Files:\nplain line\n• ()",
	}

	for _, evidence := range cases {
		attachments := ParseAttachments(evidence)
		if len(attachments) != 0 {
			t.Errorf("Evidence %q: expected no attachments, got %d", evidence, len(attachments))
		}
	}
}

func TestParseAttachmentsSkipsProseAfterHeader(t *testing.T) {
	evidence := "📎 Attached Evidence Files:\nsee below\n• audit.log (33 KB)\nnotes follow\n• summary (final version)"

	attachments := ParseAttachments(evidence)

	if len(attachments) != 2 {
		t.Fatalf("Expected 2 attachments, got %d", len(attachments))
	}
	if attachments[0].Filename != "audit.log" || attachments[0].Size != "33 KB" {
		t.Errorf("Unexpected first attachment: %+v", attachments[0])
	}
	// No extension: no type, description kept as-is.
	if attachments[1].Type != "" {
		t.Errorf("Expected empty type for extensionless file, got %q", attachments[1].Type)
	}
	if attachments[1].Description != "final version" {
		t.Errorf("Expected description %q, got %q", "final version", attachments[1].Description)
	}
}
