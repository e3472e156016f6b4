package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// serializeContent renders asset content as the text the scorers inspect.
// Strings pass through; everything else is encoded as JSON without HTML escaping.
func serializeContent(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(content); err != nil {
		return fmt.Sprint(content)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
