package jindent_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jindent"
)

// benchInput generates a document of n records with a mix of value types.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"item \"%d\"","price":%d.%02d,"tags":["a","b\u00e9"],"ok":%v,"next":null}`,
			i, i, i*7, i%100, i%2 == 0)
	}
	sb.WriteString("]")
	return []byte(sb.String())
}

func BenchmarkRender(b *testing.B) {
	input := benchInput(5000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Indent", func(b *testing.B) {
		var buf bytes.Buffer
		for i := 0; i < b.N; i++ {
			buf.Reset()
			if err := json.Indent(&buf, input, "", "  "); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Render", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := jindent.Render(io.Discard, bytes.NewReader(input)); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Skip", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p := jindent.NewParser(bytes.NewReader(input))
			if err := p.Skip(); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
