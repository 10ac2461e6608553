package pipeline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

type blockFixture struct {
	name  string
	icon  string
	drops []string
	noMap bool
}

func (b blockFixture) html() string {
	var sb strings.Builder
	sb.WriteString(`<div class="mb-5">`)
	if b.icon != "" {
		fmt.Fprintf(&sb, `<img src="%s">`, b.icon)
	}
	fmt.Fprintf(&sb, `<a class="text-primary" href="/monster/1"> %s </a>`, b.name)
	sb.WriteString(`<p><b>Unsur:</b> <span>Api</span></p>`)
	sb.WriteString(`<p><b>HP:</b> <span>12000</span></p>`)
	sb.WriteString(`<p><b>XP:</b> <span>300</span></p>`)
	sb.WriteString("<p><b>Leveling:</b>\n  40 <br>\n  45\n</p>")
	if b.noMap {
		sb.WriteString(`<p><b>Peta:</b> <span>Unknown</span></p>`)
	} else {
		sb.WriteString(`<p><b>Peta:</b> <a href="/map/1">Lost Cave</a></p>`)
	}
	if b.drops != nil {
		sb.WriteString(`<p><b>Drop:</b>`)
		for _, d := range b.drops {
			fmt.Fprintf(&sb, ` <img src="/img/item.png"><a href="/item">%s</a>`, d)
		}
		sb.WriteString(`</p>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func listingPage(totalPages int, blocks ...blockFixture) string {
	var sb strings.Builder
	sb.WriteString(`<html><body><div class="card"><dl>`)
	for _, b := range blocks {
		sb.WriteString(b.html())
	}
	sb.WriteString(`</dl></div>`)
	if totalPages > 0 {
		sb.WriteString(`<ul class="pagination"><li><a>&lsaquo;</a></li>`)
		for i := 1; i <= totalPages; i++ {
			fmt.Fprintf(&sb, `<li><a href="?page=%d">%d</a></li>`, i, i)
		}
		sb.WriteString(`<li><a>&rsaquo;</a></li></ul>`)
	}
	sb.WriteString(`</body></html>`)
	return sb.String()
}

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
