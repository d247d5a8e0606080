package format

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through their JSON encoding first, so json tags
// decide the field names; snake_case names become kebab-case keywords
// (published_date -> :published-date).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	p := ednPrinter{w: bw, pretty: pretty}
	p.value(doc, 0)
	bw.WriteByte('\n')
	return bw.Flush()
}

type ednPrinter struct {
	w      *bufio.Writer
	pretty bool
}

func (p ednPrinter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		p.w.WriteString("nil")
	case bool:
		p.w.WriteString(strconv.FormatBool(t))
	case string:
		p.w.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			p.w.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			p.w.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		p.open('[')
		for i, it := range t {
			p.sep(i, depth)
			p.value(it, depth+1)
		}
		p.close(']', depth, len(t))
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p.open('{')
		for i, k := range keys {
			p.sep(i, depth)
			p.w.WriteString(ednKeyword(k))
			p.w.WriteByte(' ')
			p.value(t[k], depth+1)
		}
		p.close('}', depth, len(keys))
	default:
		p.w.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func (p ednPrinter) open(c byte) {
	p.w.WriteByte(c)
}

func (p ednPrinter) sep(i, depth int) {
	switch {
	case p.pretty:
		p.w.WriteByte('\n')
		p.w.WriteString(strings.Repeat("  ", depth+1))
	case i > 0:
		p.w.WriteByte(' ')
	}
}

func (p ednPrinter) close(c byte, depth, n int) {
	if p.pretty && n > 0 {
		p.w.WriteByte('\n')
		p.w.WriteString(strings.Repeat("  ", depth))
	}
	p.w.WriteByte(c)
}

func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	return ":" + s
}
