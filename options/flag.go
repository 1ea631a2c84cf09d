package options

type FlagEnum int

const (
	FlagStrictInt64     FlagEnum = 1 << iota // int64 cells parsed as base-10 integers instead of through float64
	FlagLastBindingWins                      // duplicate header labels rebind a field, rightmost column wins and the rest are ignored

	FlagAll  = (1 << iota) - 1 // all flags combined
	FlagNone = 0               // no flags selected
)
