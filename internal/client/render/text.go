// Package render turns marketplace data into terminal text.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// PlainText flattens an HTML fragment. Block elements and <br> become line
// breaks, list items get a "- " bullet, and runs of blank space collapse.
// Input that is not HTML comes back with only whitespace normalised.
func PlainText(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return normalize(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return normalize(html)
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").PrependHtml("- ")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").AppendHtml("\n")

	return normalize(doc.Text())
}

func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n <= 3 {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-3]) + "..."
}

// Price formats an amount with two decimals and thousands separators.
func Price(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + frac
}

// Percent formats a ratio already scaled to 0..100.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Stars draws a rating mask as filled and empty stars.
func Stars(mask [5]bool) string {
	var b strings.Builder
	for _, on := range mask {
		if on {
			b.WriteString("*")
		} else {
			b.WriteString(".")
		}
	}
	return b.String()
}
