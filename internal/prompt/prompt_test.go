package prompt

import (
	"strings"
	"testing"
)

func TestSystemPrompt_WordCountRanges(t *testing.T) {
	cases := []struct {
		contentType string
		length      string
		want        string
	}{
		{"blog-post", "short", "300-500 words"},
		{"blog-post", "medium", "700-1000 words"},
		{"blog-post", "long", "1500-2000 words"},
		{"social-media", "short", "50-80 words"},
		{"social-media", "long", "200-300 words"},
		{"email", "medium", "300-500 words"},
		{"ad-copy", "short", "30-50 words"},
		{"ad-copy", "long", "150-250 words"},
		{"product-description", "medium", "200-350 words"},
	}

	for _, c := range cases {
		got := SystemPrompt(c.contentType, "professional", c.length)
		if !strings.Contains(got, c.want) {
			t.Errorf("%s/%s: expected prompt to contain %q", c.contentType, c.length, c.want)
		}
	}
}

func TestSystemPrompt_UnknownContentTypeUsesGenericRanges(t *testing.T) {
	got := SystemPrompt("press-release", "professional", "short")
	if !strings.Contains(got, "100-300 words") {
		t.Errorf("expected generic short range, got:\n%s", got)
	}
}

func TestSystemPrompt_Defaults(t *testing.T) {
	// Empty inputs collapse to blog-post / professional / medium.
	got := SystemPrompt("", "", "")
	if !strings.Contains(got, "700-1000 words") {
		t.Error("expected default blog-post/medium word count")
	}
	if !strings.Contains(got, "blog post") {
		t.Error("expected blog-post base prompt")
	}
	if !strings.Contains(got, "professional tone") {
		t.Error("expected professional tone instructions")
	}
}

func TestSystemPrompt_PartOrder(t *testing.T) {
	got := SystemPrompt("ad-copy", "humorous", "short")

	base := strings.Index(got, "advertising copywriter")
	tone := strings.Index(got, "humor and wit")
	length := strings.Index(got, "30-50 words")
	structure := strings.Index(got, "Structure your ad copy")
	closing := strings.Index(got, "free of repetition")

	if base < 0 || tone < 0 || length < 0 || structure < 0 || closing < 0 {
		t.Fatalf("missing prompt part in:\n%s", got)
	}
	if !(base < tone && tone < length && length < structure && structure < closing) {
		t.Errorf("prompt parts out of order: base=%d tone=%d length=%d structure=%d closing=%d",
			base, tone, length, structure, closing)
	}
}

func TestSystemPrompt_Idempotent(t *testing.T) {
	a := SystemPrompt("email", "friendly", "long")
	b := SystemPrompt("email", "friendly", "long")
	if a != b {
		t.Error("identical inputs must produce byte-identical prompts")
	}
}

func TestClampTemperature(t *testing.T) {
	cases := []struct {
		contentType string
		in          float64
		want        float64
	}{
		{"ad-copy", 0.1, 0.4},
		{"ad-copy", 0.6, 0.6},
		{"ad-copy", 0.95, 0.8},
		{"social-media", 0.0, 0.4},
		{"social-media", 1.2, 0.8},
		{"product-description", 0.9, 0.5},
		{"product-description", 0.3, 0.3},
		{"blog-post", 0.95, 0.95},
		{"email", 0.0, 0.0},
	}

	for _, c := range cases {
		got := ClampTemperature(c.contentType, c.in)
		if got != c.want {
			t.Errorf("ClampTemperature(%s, %v) = %v, want %v", c.contentType, c.in, got, c.want)
		}
	}
}
