package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// RowInfo is one submission row as it appears on the console listing.
// Fields left empty mean the row did not yield that value; the engine
// decides whether that makes the row malformed.
type RowInfo struct {
	Title    string
	ForumURL string
	ID       string
}

// ForumInfo is the parsed content of one submission's forum page.
type ForumInfo struct {
	Title       string
	Number      string
	Ratings     []Rating
	Confidences []Rating
}

// ParseListing extracts submission rows from the console page HTML, in
// document order. Forum links are resolved against baseURL and the
// identifier is read from the link's query string.
func ParseListing(html string, loc ListingLocators, baseURL string) ([]RowInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	var rows []RowInfo
	doc.Find(loc.Row).Each(func(i int, sel *goquery.Selection) {
		row := RowInfo{
			Title: trySelectorsText(sel, loc.Title),
		}

		if href := trySelectorsAttr(sel, loc.Link, "href"); href != "" {
			if resolved, err := base.Parse(href); err == nil {
				row.ForumURL = resolved.String()
				if loc.IDParam != "" {
					row.ID = resolved.Query().Get(loc.IDParam)
				}
			}
		}

		rows = append(rows, row)
	})

	return rows, nil
}

// ParseForum extracts title, submission number and per-reply review
// scores from a forum page snapshot. Replies that carry no rating label
// at all are not reviews (meta comments, decisions) and contribute no
// slot; replies with the label but no parseable number yield an absent
// slot.
func ParseForum(html string, loc ForumLocators) (*ForumInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse forum HTML: %w", err)
	}

	info := &ForumInfo{
		Title: trySelectorsText(doc.Selection, loc.Title),
	}

	if loc.NumberLabel != "" {
		for _, selector := range loc.NumberFrom {
			text := doc.Find(selector).First().Text()
			if num := textAfterLabel(text, loc.NumberLabel); num != "" {
				info.Number = firstToken(num)
				break
			}
		}
	}

	doc.Find(loc.Reply).Each(func(i int, sel *goquery.Selection) {
		text := sel.Text()
		if !strings.Contains(text, loc.RatingLabel) {
			return
		}
		info.Ratings = append(info.Ratings, parseLabeledNumber(text, loc.RatingLabel))
		if loc.ConfidenceLabel != "" {
			info.Confidences = append(info.Confidences, parseLabeledNumber(text, loc.ConfidenceLabel))
		}
	})

	return info, nil
}

// parseLabeledNumber finds the first number on the line following the
// label. Missing label or non-numeric text yields an absent Rating,
// never an error.
func parseLabeledNumber(text, label string) Rating {
	rest := textAfterLabel(text, label)
	if rest == "" {
		return Rating{}
	}
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		rest = rest[:idx]
	}
	match := numberRe.FindString(rest)
	if match == "" {
		return Rating{}
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return Rating{}
	}
	return Rating{Value: value, Valid: true}
}

func textAfterLabel(text, label string) string {
	idx := strings.Index(text, label)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(text[idx+len(label):])
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// trySelectorsText returns the first non-empty text among candidate
// selectors.
func trySelectorsText(sel *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		text := strings.TrimSpace(sel.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// trySelectorsAttr returns the first non-empty attribute value among
// candidate selectors.
func trySelectorsAttr(sel *goquery.Selection, selectors []string, attr string) string {
	for _, selector := range selectors {
		value, exists := sel.Find(selector).First().Attr(attr)
		if exists && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
