package text

// Default option values.
const (
	DefaultSeparator = "-"
	DefaultSuffix    = "..."
)

// Option configures a text helper.
type Option func(*options)

type options struct {
	separator    string
	separatorSet bool
	suffix       string
}

func defaultOptions() *options {
	return &options{
		separator: DefaultSeparator,
		suffix:    DefaultSuffix,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Separator sets the token separator.
//
// For [Slugify] it replaces the default "-" between words. For
// [RemoveDuplicates] it switches from whitespace splitting to splitting on
// sep exactly.
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
		o.separatorSet = true
	}
}

// Suffix sets the marker [Truncate] appends to shortened text.
// Default is "...".
func Suffix(suffix string) Option {
	return func(o *options) {
		o.suffix = suffix
	}
}
