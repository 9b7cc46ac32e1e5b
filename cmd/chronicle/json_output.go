package main

import (
	"encoding/json"
	"io"
)

// printJSON writes v to out as two-space indented JSON.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
