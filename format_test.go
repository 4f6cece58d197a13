package money

import (
	"sync"
	"testing"

	"golang.org/x/text/language"
)

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		curr, amount string
		locale       language.Tag
		want         string
	}{
		{"USD", "12345.68", language.English, "12,345.68 USD"},
		{"USD", "214.33", language.English, "214.33 USD"},
		{"USD", "11.98", language.English, "11.98 USD"},
		{"USD", "-12.34", language.English, "-12.34 USD"},
		{"USD", "0.05", language.English, "0.05 USD"},
		{"EUR", "123.45", language.English, "123.45 EUR"},
		{"JPY", "12345", language.English, "12,345 JPY"},
	}
	for _, tt := range tests {
		m := MustParse(tt.curr, tt.amount)
		got := m.Formatter(tt.locale).Format(m)
		if got != tt.want {
			t.Errorf("%v.Formatter(%v).Format() = %q, want %q", m, tt.locale, got, tt.want)
		}
		if got := m.Display(tt.locale); got != tt.want {
			t.Errorf("%v.Display(%v) = %q, want %q", m, tt.locale, got, tt.want)
		}
	}
}

func TestFormatter_OtherCurrency(t *testing.T) {
	f := NewFormatter(USD, language.English)
	tests := []struct {
		m    Money
		want string
	}{
		{MustParse("JPY", "12345"), "12,345 JPY"},
		{MustParse("OMR", "1.234"), "1.234 OMR"},
		{MustParse("USD", "12.34"), "12.34 USD"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.m); got != tt.want {
			t.Errorf("f.Format(%v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestFormatter_Curr(t *testing.T) {
	f := NewFormatter(USD, language.English)
	if got := f.Curr(); got != USD {
		t.Errorf("f.Curr() = %v, want %v", got, USD)
	}
}

func TestFormatter_Deterministic(t *testing.T) {
	m := MustParse("USD", "12345.68")
	f := m.Formatter(language.English)
	first := f.Format(m)
	for n := 0; n < 100; n++ {
		if got := f.Format(m); got != first {
			t.Fatalf("f.Format(%v) = %q, want %q", m, got, first)
		}
	}
}

func TestFormatter_Concurrent(t *testing.T) {
	values := []Money{
		MustParse("USD", "12345.68"),
		MustParse("EUR", "123.45"),
		MustParse("JPY", "12345"),
		MustParse("USD", "-0.05"),
	}
	want := make([]string, len(values))
	for i, m := range values {
		want[i] = m.Display(language.English)
	}

	const goroutines = 1000
	var wg sync.WaitGroup
	errs := make(chan string, goroutines)
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			i := g % len(values)
			if got := values[i].Display(language.English); got != want[i] {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Display returned %q", got)
	}
}
