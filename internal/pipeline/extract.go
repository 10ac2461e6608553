package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"toramboss/internal"
	"toramboss/internal/util"
)

const (
	bossBlockSelector  = "div.card dl div.mb-5"
	bossNameSelector   = "a.text-primary"
	paginationSelector = "ul.pagination li"

	miniBossIcon = `img[src="/img/f_boss.png"]`
	bossIcon     = `img[src="/img/boss.png"]`

	labelElement  = "Unsur:"
	labelHP       = "HP:"
	labelXP       = "XP:"
	labelLeveling = "Leveling:"
	labelMap      = "Peta:"
	labelDrop     = "Drop:"

	levelRangeSeparator = " s/d "
)

// ExtractBosses returns the boss and mini boss entries of one listing page in
// document order. Ordinary monsters sharing the listing are skipped.
func ExtractBosses(doc *goquery.Document) []internal.RawBoss {
	out := []internal.RawBoss{}
	doc.Find(bossBlockSelector).Each(func(_ int, block *goquery.Selection) {
		if !isBossBlock(block) {
			return
		}
		out = append(out, extractBoss(block))
	})
	return out
}

// TotalPages reads the page count from the pagination widget. The last item
// is the "next" control, so the count sits in the second-to-last one.
func TotalPages(doc *goquery.Document) (int, error) {
	items := doc.Find(paginationSelector)
	if items.Length() < 2 {
		return 0, fmt.Errorf("%w: pagination widget not found", internal.ErrParse)
	}
	text := strings.TrimSpace(items.Eq(-2).Text())
	total, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: pagination total %q is not a number", internal.ErrParse, text)
	}
	if total < 1 {
		return 0, fmt.Errorf("%w: pagination total %d out of range", internal.ErrParse, total)
	}
	return total, nil
}

func isBossBlock(block *goquery.Selection) bool {
	return block.Find(miniBossIcon).Length() > 0 || block.Find(bossIcon).Length() > 0
}

func extractBoss(block *goquery.Selection) internal.RawBoss {
	return internal.RawBoss{
		Name:     strings.TrimSpace(block.Find(bossNameSelector).Text()),
		Element:  nextText(findLabel(block, labelElement)),
		HP:       nextText(findLabel(block, labelHP)),
		XP:       nextText(findLabel(block, labelXP)),
		Leveling: levelingText(findLabel(block, labelLeveling)),
		Map:      strings.TrimSpace(findLabel(block, labelMap).NextFiltered("a").Text()),
		Drops:    extractDrops(findLabel(block, labelDrop)),
	}
}

// findLabel matches <b> nodes whose trimmed text equals label exactly.
func findLabel(block *goquery.Selection, label string) *goquery.Selection {
	return block.Find("b").FilterFunction(func(_ int, b *goquery.Selection) bool {
		return strings.TrimSpace(b.Text()) == label
	})
}

func nextText(label *goquery.Selection) string {
	return strings.TrimSpace(label.Next().Text())
}

// levelingText joins the bare text nodes around the label, e.g.
// "<b>Leveling:</b> 1 <br> 10" becomes "1 s/d 10".
func levelingText(label *goquery.Selection) string {
	var b strings.Builder
	label.Parent().Contents().Each(func(_ int, node *goquery.Selection) {
		for _, n := range node.Nodes {
			if n.Type == html.TextNode {
				b.WriteString(n.Data)
			}
		}
	})
	return util.ReplaceSpaces(b.String(), levelRangeSeparator)
}

func extractDrops(label *goquery.Selection) []internal.Drop {
	drops := []internal.Drop{}
	label.NextAllFiltered("a").Each(func(_ int, a *goquery.Selection) {
		drops = append(drops, internal.Drop{Name: strings.TrimSpace(a.Text())})
	})
	return drops
}
