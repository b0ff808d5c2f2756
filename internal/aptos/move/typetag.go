// Package move decodes Move on-chain representations served by the Aptos node API.
package move

import (
	"errors"
	"fmt"
	"strings"
)

// StructTag is a parsed fully-qualified struct type such as 0x1::coin::CoinInfo<0x1::aptos_coin::AptosCoin>.
type StructTag struct {
	Address    string
	Module     string
	Name       string
	TypeParams []string
}

// BaseName returns address::module::name with a normalized address and no type parameters.
func (t StructTag) BaseName() string {
	return NormalizeAddress(t.Address) + "::" + t.Module + "::" + t.Name
}

func (t StructTag) String() string {
	base := t.Address + "::" + t.Module + "::" + t.Name
	if len(t.TypeParams) == 0 {
		return base
	}
	return base + "<" + strings.Join(t.TypeParams, ", ") + ">"
}

// ParseStructTag parses a struct type string, keeping type parameters as their string form.
func ParseStructTag(s string) (StructTag, error) {
	s = strings.TrimSpace(s)
	base, params, generic := s, "", false
	if open := strings.IndexByte(s, '<'); open >= 0 {
		generic = true
		if !strings.HasSuffix(s, ">") {
			return StructTag{}, fmt.Errorf("struct tag %q: unbalanced type parameters", s)
		}
		base, params = s[:open], s[open+1:len(s)-1]
	}

	parts := strings.Split(base, "::")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return StructTag{}, fmt.Errorf("struct tag %q: want address::module::name", s)
	}

	tag := StructTag{Address: parts[0], Module: parts[1], Name: parts[2]}
	if generic {
		split, err := splitTypeParams(params)
		if err != nil {
			return StructTag{}, fmt.Errorf("struct tag %q: %w", s, err)
		}
		tag.TypeParams = split
	}
	return tag, nil
}

// BaseName strips type parameters from a struct type string and normalizes its address.
// It returns an empty string for strings that are not struct types.
func BaseName(s string) string {
	tag, err := ParseStructTag(s)
	if err != nil {
		return ""
	}
	return tag.BaseName()
}

func splitTypeParams(s string) ([]string, error) {
	var (
		params []string
		depth  int
		start  int
	)
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced type parameters")
			}
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced type parameters")
	}
	params = append(params, strings.TrimSpace(s[start:]))
	for _, p := range params {
		if p == "" {
			return nil, errors.New("empty type parameter")
		}
	}
	return params, nil
}

// NormalizeAddress lowercases an account address and strips leading zeros, so 0x0001 and 0x1 compare equal.
func NormalizeAddress(addr string) string {
	a := strings.ToLower(strings.TrimSpace(addr))
	a = strings.TrimPrefix(a, "0x")
	a = strings.TrimLeft(a, "0")
	if a == "" {
		a = "0"
	}
	return "0x" + a
}
