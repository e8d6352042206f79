package extract

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LoadLocalHtml parses an HTML document from raw bytes.
func LoadLocalHtml(data []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// LoadHttpHtml fetches a page and parses it as an HTML document.
func LoadHttpHtml(url string) (*goquery.Document, error) {
	client := &http.Client{}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0")
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP code is not 200. Status: %s", res.Status)
	}

	htmlBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return LoadLocalHtml(htmlBytes)
}

// Items returns the trimmed text of every node matching selector, in
// document order. Blank matches are dropped.
func Items(doc *goquery.Document, selector string) []string {
	out := []string{}
	doc.Find(selector).Each(func(i int, e *goquery.Selection) {
		text := strings.TrimSpace(e.Text())
		if text != "" {
			out = append(out, text)
		}
	})

	return out
}

// ListItems extracts the items of every <ul> and <ol> in the document.
func ListItems(doc *goquery.Document) []string {
	return Items(doc, "ul > li, ol > li")
}

// Options extracts the options of every <select> in the document.
func Options(doc *goquery.Document) []string {
	return Items(doc, "select option")
}

// TableColumn extracts the text of the index-th cell of every table row.
// Rows with fewer cells are skipped.
func TableColumn(doc *goquery.Document, index int) []string {
	out := []string{}
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cell := row.Find("td").Eq(index)
		if cell.Length() == 0 {
			return
		}

		text := strings.TrimSpace(cell.Text())
		if text != "" {
			out = append(out, text)
		}
	})

	return out
}
