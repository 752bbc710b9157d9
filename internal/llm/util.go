package llm

import "strings"

// CleanJSONBlock isolates the JSON value in a model response. LLMs often wrap
// JSON in ```json ... ``` blocks or surround it with conversational prose even
// when instructed not to. Returns the input unchanged when no JSON value can
// be located.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		// Handle generic ``` ... ``` blocks
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Cut preamble and trailing prose around the first balanced JSON value.
	objIdx := strings.Index(text, "{")
	arrIdx := strings.Index(text, "[")

	start := -1
	isArray := false
	switch {
	case objIdx >= 0 && (arrIdx < 0 || objIdx < arrIdx):
		start = objIdx
	case arrIdx >= 0:
		start = arrIdx
		isArray = true
	}
	if start < 0 {
		return text
	}

	var extracted string
	if isArray {
		extracted = extractJSONArray(text[start:])
	} else {
		extracted = extractJSONObject(text[start:])
	}
	if extracted == "" {
		return text
	}
	return extracted
}

// extractJSONObject returns the balanced JSON object at the start of s, or ""
// when s does not start with one. Brace depth is tracked outside string
// literals only, so braces inside values do not terminate the scan.
func extractJSONObject(s string) string {
	return extractBalanced(s, '{', '}')
}

// extractJSONArray returns the balanced JSON array at the start of s, or ""
// when s does not start with one.
func extractJSONArray(s string) string {
	return extractBalanced(s, '[', ']')
}

func extractBalanced(s string, open, close byte) string {
	if len(s) == 0 || s[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
