package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTelegramHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "paragraphs and breaks",
			source: "<p>Привет</p><p>мир<br>снова</p>",
			want:   "Привет\nмир\nснова",
		},
		{
			name:   "editor tags are mapped",
			source: "<p><strong>важно</strong> и <em>курсив</em></p>",
			want:   "<b>важно</b> и <i>курсив</i>",
		},
		{
			name:   "unsupported tags keep text",
			source: `<h2 style="color:red">Заголовок</h2><span>текст</span>`,
			want:   "Заголовок\nтекст",
		},
		{
			name:   "links keep only href",
			source: `<a href="https://example.com/?a=1&b=2" target="_blank">сайт</a>`,
			want:   `<a href="https://example.com/?a=1&amp;b=2">сайт</a>`,
		},
		{
			name:   "text is escaped",
			source: "5 &lt; 6 &amp; 7 &gt; 3",
			want:   "5 &lt; 6 &amp; 7 &gt; 3",
		},
		{
			name:   "non breaking spaces",
			source: "<p>a&nbsp;b</p>",
			want:   "a b",
		},
		{
			name:   "unclosed tags are closed",
			source: "<b>жирный <i>и курсив",
			want:   "<b>жирный <i>и курсив</i></b>",
		},
		{
			name:   "lists",
			source: "<ul><li>один</li><li>два</li></ul>",
			want:   "• один\n• два",
		},
		{
			name:   "spoiler",
			source: `<span class="tg-spoiler">тайна</span> <span>явно</span>`,
			want:   "<tg-spoiler>тайна</tg-spoiler> явно",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToTelegramHTML(tt.source))
		})
	}
}
