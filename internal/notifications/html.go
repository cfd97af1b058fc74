package notifications

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

// Tags Telegram accepts in HTML parse mode, with the canonical name to emit.
var telegramTags = map[string]string{
	"b":          "b",
	"strong":     "b",
	"i":          "i",
	"em":         "i",
	"u":          "u",
	"ins":        "u",
	"s":          "s",
	"strike":     "s",
	"del":        "s",
	"code":       "code",
	"pre":        "pre",
	"a":          "a",
	"blockquote": "blockquote",
	"tg-spoiler": "tg-spoiler",
}

// ToTelegramHTML rewrites rich text produced by the admin editor into the
// HTML subset Telegram understands. Unsupported tags are dropped with their
// text kept, paragraphs and line breaks become newlines, and every opened tag
// is closed.
func ToTelegramHTML(source string) string {
	var (
		out   strings.Builder
		stack []string
		spans []bool
	)

	tokenizer := nethtml.NewTokenizer(strings.NewReader(source))

	for {
		switch tokenizer.Next() {
		case nethtml.ErrorToken:
			for i := len(stack) - 1; i >= 0; i-- {
				out.WriteString("</" + stack[i] + ">")
			}
			return strings.TrimSpace(out.String())

		case nethtml.TextToken:
			text := strings.ReplaceAll(string(tokenizer.Text()), "\u00a0", " ")
			out.WriteString(html.EscapeString(text))

		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			token := tokenizer.Token()

			switch token.Data {
			case "br":
				out.WriteString("\n")
				continue
			case "li":
				out.WriteString("• ")
				continue
			}

			tag, ok := telegramTag(token)
			if token.Data == "span" && token.Type == nethtml.StartTagToken {
				spans = append(spans, ok)
			}
			if !ok {
				continue
			}

			if tag == "a" {
				href := attr(token, "href")
				if href == "" {
					continue
				}
				out.WriteString(`<a href="` + html.EscapeString(href) + `">`)
			} else {
				out.WriteString("<" + tag + ">")
			}
			stack = append(stack, tag)

		case nethtml.EndTagToken:
			token := tokenizer.Token()

			switch token.Data {
			case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				out.WriteString("\n")
				continue
			}

			tag, ok := telegramTag(token)
			if token.Data == "span" && len(spans) > 0 {
				tag, ok = "tg-spoiler", spans[len(spans)-1]
				spans = spans[:len(spans)-1]
			}
			if !ok {
				continue
			}

			// close only what is open, innermost first
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] != tag {
					continue
				}
				for j := len(stack) - 1; j >= i; j-- {
					out.WriteString("</" + stack[j] + ">")
				}
				stack = stack[:i]
				break
			}
		}
	}
}

func telegramTag(token nethtml.Token) (string, bool) {
	if token.Data == "span" {
		if attr(token, "class") == "tg-spoiler" {
			return "tg-spoiler", true
		}
		return "", false
	}

	tag, ok := telegramTags[token.Data]
	return tag, ok
}

func attr(token nethtml.Token, key string) string {
	for _, a := range token.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
