package cmdargs

import "unicode/utf8"

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleLongOption  Role = 1 << iota
	RoleShortOption      = 1 << iota
	// RoleMalformedOption is a dash-prefixed token that is neither "--name" nor "-c"
	RoleMalformedOption = 1 << iota
	RoleOrdinary        = 1 << iota
	RoleLast            = 1 << iota // modifies any role
)

const roleOption = RoleLongOption | RoleShortOption | RoleMalformedOption

type Token struct {
	Arg string
	// Name is the part after "--" for RoleLongOption
	Name string
	// Short is the alias character for RoleShortOption
	Short rune
	// Role is one of RoleLongOption, RoleShortOption, RoleMalformedOption, RoleOrdinary
	// optionally combined with RoleLast
	Role Role
}

// IsOption reports whether the token starts with a dash
func (t Token) IsOption() bool {
	return t.Role.Has(roleOption)
}

func (t Token) IsLast() bool {
	return t.Role.Has(RoleLast)
}

// Classify determines the role of a single token. RoleLast is never set by Classify.
func Classify(arg string) Token {
	token := Token{Arg: arg}
	switch {
	case len(arg) == 0 || arg[0] != '-':
		token.Role = RoleOrdinary
	case len(arg) >= 2 && arg[1] == '-':
		token.Role = RoleLongOption
		token.Name = arg[2:]
	default:
		rest := arg[1:]
		if utf8.RuneCountInString(rest) != 1 {
			token.Role = RoleMalformedOption
			return token
		}
		r, _ := utf8.DecodeRuneInString(rest)
		token.Role = RoleShortOption
		token.Short = r
	}
	return token
}
