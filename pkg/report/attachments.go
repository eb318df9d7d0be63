package report

import (
	"path"
	"regexp"
	"strings"
)

// Attachment is a single attached-evidence entry scraped from an
// assessment's free-text evidence field.
type Attachment struct {
	Filename    string `json:"filename"`
	Description string `json:"description,omitempty"`
	Size        string `json:"size,omitempty"`
	Type        string `json:"type,omitempty"`
}

var (
	// A bullet line of the form "• <filename> (<details>)".
	attachmentLinePattern = regexp.MustCompile(`^\s*•\s*(.+?)\s*\((.+)\)\s*$`)

	// A size token inside the details, e.g. "2.40 MB" or "512 KB".
	attachmentSizePattern = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?\s*(?:B|KB|MB|GB|TB)$`)
)

// ParseAttachments scrapes the attached-files block out of an assessment's
// evidence text. The block is a header line containing "Attached Evidence
// Files" or a 📎 glyph, followed by bullet lines of the form
// "• <filename> (<details>)"; details split on commas into a size token and
// a description, and the type derives from the filename extension.
//
// This is best-effort text scraping, not a schema: text without the marker
// yields an empty list, malformed lines are skipped, and the function never
// fails.
func ParseAttachments(evidence string) []Attachment {
	attachments := make([]Attachment, 0)
	if evidence == "" {
		return attachments
	}

	inBlock := false
	for _, line := range strings.Split(evidence, "\n") {
		if !inBlock {
			if strings.Contains(line, "Attached Evidence Files") || strings.Contains(line, "📎") {
				inBlock = true
			}
			continue
		}

		match := attachmentLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		attachment := Attachment{Filename: match[1]}
		attachment.Size, attachment.Description = splitDetails(match[2])
		attachment.Type = typeFromFilename(attachment.Filename)
		attachments = append(attachments, attachment)
	}

	return attachments
}

// splitDetails separates the parenthesized details into a size token and a
// remaining description. Details are comma-separated; the first part that
// looks like a file size becomes the size.
func splitDetails(details string) (size string, description string) {
	var rest []string
	for _, part := range strings.Split(details, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if size == "" && attachmentSizePattern.MatchString(part) {
			size = part
			continue
		}
		rest = append(rest, part)
	}
	return size, strings.Join(rest, ", ")
}

// typeFromFilename derives an uppercase type label from the filename
// extension; files without an extension get no type.
func typeFromFilename(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	return strings.ToUpper(ext)
}
