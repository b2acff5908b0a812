package page

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// TestDescribe は本文からの概要生成を検証する。
func TestDescribe(t *testing.T) {
	t.Parallel()

	t.Run("タグが除去され前後の空白が削除されること", func(t *testing.T) {
		t.Parallel()

		got := Describe("  <h1>Title</h1>\n<p>Some <a href=\"/x\">linked</a> text.</p>  ")
		if got != "Title\nSome linked text." {
			t.Errorf("Describe() = %q", got)
		}
	})

	t.Run("文字参照はデコードされたプレーンテキストになること", func(t *testing.T) {
		t.Parallel()

		got := Describe("<p>Use &lt;b&gt; &amp; &quot;quotes&quot;</p>")
		if got != `Use <b> & "quotes"` {
			t.Errorf("Describe() = %q, want %q", got, `Use <b> & "quotes"`)
		}
	})

	t.Run("scriptとstyleの中身は含まれないこと", func(t *testing.T) {
		t.Parallel()

		got := Describe("<style>p{color:red}</style><p>visible</p><script>alert(1)</script>")
		if got != "visible" {
			t.Errorf("Describe() = %q, want %q", got, "visible")
		}
	})

	t.Run("ちょうど150文字の場合は省略記号が付かないこと", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 150)
		got := Describe("<p>" + text + "</p>")
		if got != text {
			t.Errorf("Describe() = %q, want %q", got, text)
		}
	})

	t.Run("151文字以上の場合は単語境界で切り詰めて省略記号が付くこと", func(t *testing.T) {
		t.Parallel()

		got := Describe("<p>" + strings.Repeat("abcd ", 40) + "</p>")
		if !strings.HasSuffix(got, "...") {
			t.Fatalf("Describe() = %q, want suffix ...", got)
		}
		if n := utf8.RuneCountInString(got); n > 153 {
			t.Errorf("len = %d, want <= 153", n)
		}
		for _, word := range strings.Fields(strings.TrimSuffix(got, "...")) {
			if word != "abcd" {
				t.Errorf("単語が途中で切れている: %q", word)
			}
		}
	})

	t.Run("境界をまたぐ単語は丸ごと除かれること", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", 100) + " " + strings.Repeat("y", 100)
		got := Describe(text)
		want := strings.Repeat("x", 100) + "..."
		if got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("150文字目で単語が終わる場合はその単語が残ること", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 150) + " " + strings.Repeat("b", 10)
		got := Describe(text)
		want := strings.Repeat("a", 150) + "..."
		if got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})

	t.Run("マルチバイト文字は文字数で数えること", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("あ", 150)
		if got := Describe(text); got != text {
			t.Errorf("Describe() = %q, want %q", got, text)
		}
	})

	t.Run("空のHTMLでは空文字列が返ること", func(t *testing.T) {
		t.Parallel()

		if got := Describe(""); got != "" {
			t.Errorf("Describe() = %q, want empty", got)
		}
	})
}
