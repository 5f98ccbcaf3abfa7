package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid simple", username: "alice", wantErr: false},
		{name: "valid with dash and underscore", username: "alice_the-2nd", wantErr: false},
		{name: "minimum length", username: "abc", wantErr: false},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 51), wantErr: true},
		{name: "spaces rejected", username: "alice smith", wantErr: true},
		{name: "symbols rejected", username: "alice!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Username(tt.username); (err != nil) != tt.wantErr {
				t.Fatalf("Username(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "alice@example.com", wantErr: false},
		{name: "valid with plus tag", email: "alice+tag@example.co.uk", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "missing at sign", email: "alice.example.com", wantErr: true},
		{name: "missing tld", email: "alice@example", wantErr: true},
		{name: "too long", email: strings.Repeat("a", 95) + "@ex.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Email(tt.email); (err != nil) != tt.wantErr {
				t.Fatalf("Email(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestPasswordComplexity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Password1", wantErr: false},
		{name: "minimum length", password: "abcdefg1", wantErr: false},
		{name: "too short", password: "abc1", wantErr: true},
		{name: "too long", password: strings.Repeat("a", 128) + "1", wantErr: true},
		{name: "no digit", password: "abcdefgh", wantErr: true},
		{name: "no letter", password: "12345678", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := PasswordComplexity(tt.password); (err != nil) != tt.wantErr {
				t.Fatalf("PasswordComplexity(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain text", input: "New bike", want: "New bike"},
		{name: "trims whitespace", input: "  New bike  ", want: "New bike"},
		{name: "angle brackets without script ok", input: "price < 100 && > 50", want: "price < 100 && > 50"},
		{name: "script tag", input: "hello <script>alert(1)</script>", wantErr: true},
		{name: "script tag mixed case", input: "<ScRiPt>alert(1)</script>", wantErr: true},
		{name: "javascript url", input: "JavaScript:alert(1)", wantErr: true},
		{name: "onerror attribute", input: `<img src=x onerror=alert(1)>`, wantErr: true},
		{name: "onclick attribute", input: `<a onclick=steal()>click</a>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Markup(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Markup(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if !tt.wantErr && got != tt.want {
				t.Fatalf("Markup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeLikePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no metacharacters", input: "bike", expected: "bike"},
		{name: "percent", input: "50% off", expected: `50\% off`},
		{name: "underscore", input: "snake_case", expected: `snake\_case`},
		{name: "brackets", input: "a[b]c", expected: `a\[b\]c`},
		{name: "backslash escaped before the rest", input: `a\%b`, expected: `a\\\%b`},
		{name: "everything at once", input: `\%_[]`, expected: `\\\%\_\[\]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeLikePattern(tt.input); got != tt.expected {
				t.Fatalf("EscapeLikePattern(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "zero", value: "0", wantErr: false},
		{name: "typical price", value: "19.99", wantErr: false},
		{name: "one decimal place", value: "5.5", wantErr: false},
		{name: "max digits", value: "9999999999.99", wantErr: false},
		{name: "negative", value: "-1", wantErr: true},
		{name: "three decimal places", value: "10.999", wantErr: true},
		{name: "too many digits", value: "1234567890123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := decimal.NewFromString(tt.value)
			if err != nil {
				t.Fatalf("bad test value %q: %v", tt.value, err)
			}

			if err := Money(d); (err != nil) != tt.wantErr {
				t.Fatalf("Money(%s) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		skip    int
		limit   int
		wantErr bool
	}{
		{name: "defaults", skip: 0, limit: 10, wantErr: false},
		{name: "upper bounds", skip: 10000, limit: 50, wantErr: false},
		{name: "negative skip", skip: -1, limit: 10, wantErr: true},
		{name: "skip beyond cap", skip: 10001, limit: 10, wantErr: true},
		{name: "zero limit", skip: 0, limit: 0, wantErr: true},
		{name: "limit beyond cap", skip: 0, limit: 51, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Pagination(tt.skip, tt.limit); (err != nil) != tt.wantErr {
				t.Fatalf("Pagination(%d, %d) error = %v, wantErr %v", tt.skip, tt.limit, err, tt.wantErr)
			}
		})
	}
}

func TestTextBounds(t *testing.T) {
	t.Parallel()

	if err := Title(""); err == nil {
		t.Fatal("Title(\"\") expected error")
	}

	if err := Title(strings.Repeat("a", 200)); err != nil {
		t.Fatalf("Title at max length: %v", err)
	}

	if err := Title(strings.Repeat("a", 201)); err == nil {
		t.Fatal("Title beyond max length expected error")
	}

	if err := Description(""); err != nil {
		t.Fatalf("empty description should be fine: %v", err)
	}

	if err := Description(strings.Repeat("a", 1001)); err == nil {
		t.Fatal("Description beyond max length expected error")
	}

	if err := SearchTerm(strings.Repeat("a", 100)); err != nil {
		t.Fatalf("SearchTerm at max length: %v", err)
	}

	if err := SearchTerm(strings.Repeat("a", 101)); err == nil {
		t.Fatal("SearchTerm beyond max length expected error")
	}
}
