package dataset

// ---------- Defaults ----------

const (
	// DefaultMinFields is the field count below which a record is skipped.
	DefaultMinFields = 10

	// DefaultTargetColumn is the 0-based target column (PRP in machine.data).
	DefaultTargetColumn = 8
)

// DefaultFeatureColumns returns the 0-based feature columns 2..7.
func DefaultFeatureColumns() []int { return []int{2, 3, 4, 5, 6, 7} }

const (
	panicFeatureColumns = "dataset: WithFeatureColumns: need at least one column, all >= 0"
	panicTargetColumn   = "dataset: WithTargetColumn: column must be >= 0"
	panicMinFields      = "dataset: WithMinFields: n must be >= 1"
)

// Option configures parsing.
type Option func(*Options)

// Options is the resolved parse configuration.
type Options struct {
	features  []int
	target    int
	minFields int
}

// WithFeatureColumns selects the 0-based feature columns, in order.
// Panics on an empty list or a negative index.
func WithFeatureColumns(cols ...int) Option {
	if len(cols) == 0 {
		panic(panicFeatureColumns)
	}
	for _, c := range cols {
		if c < 0 {
			panic(panicFeatureColumns)
		}
	}
	own := append([]int(nil), cols...)

	return func(o *Options) { o.features = own }
}

// WithTargetColumn selects the 0-based target column. Panics when c < 0.
func WithTargetColumn(c int) Option {
	if c < 0 {
		panic(panicTargetColumn)
	}

	return func(o *Options) { o.target = c }
}

// WithMinFields sets the field count below which records are skipped.
// Panics when n < 1.
func WithMinFields(n int) Option {
	if n < 1 {
		panic(panicMinFields)
	}

	return func(o *Options) { o.minFields = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		features:  DefaultFeatureColumns(),
		target:    DefaultTargetColumn,
		minFields: DefaultMinFields,
	}
	for _, opt := range user {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}
