package frash

// Result is the full outcome of a digest computation.
type Result struct {
	Length int
	Digest string
	// Grid is the automaton the digest was read from. Row 0 is the seed.
	Grid Grid
	// Shift is the popcount of the seed row.
	Shift int
	// Rows holds the grid row selected for each digest digit.
	Rows []int
}

// Hash returns the digest of input. With no options the digest has
// DefaultLength digits.
func Hash(input []byte, opts ...Option) (string, error) {
	res, err := compute(newConfig(opts...), input)
	if err != nil {
		return "", err
	}
	return res.Digest, nil
}

// Compute returns the digest of input together with the grid and the
// selection state used to derive it.
func Compute(input []byte, opts ...Option) (Result, error) {
	return compute(newConfig(opts...), input)
}

// Hasher computes digests with a fixed configuration. It holds no mutable
// state and may be shared between goroutines.
type Hasher struct {
	cfg Config
}

func New(opts ...Option) *Hasher {
	return &Hasher{cfg: newConfig(opts...)}
}

func (h *Hasher) Config() Config { return h.cfg }

func (h *Hasher) Hash(input []byte) (string, error) {
	res, err := compute(h.cfg, input)
	if err != nil {
		return "", err
	}
	return res.Digest, nil
}

func (h *Hasher) Compute(input []byte) (Result, error) {
	return compute(h.cfg, input)
}

// compute validates everything up front, then runs the pipeline. Nothing is
// evolved for an invalid request.
func compute(cfg Config, input []byte) (Result, error) {
	if err := cfg.Check(); err != nil {
		return Result{}, err
	}
	bits, err := EncodeBits(input)
	if err != nil {
		return Result{}, err
	}

	seed, err := FoldSeed(bits, WidthBits(cfg.Length))
	if err != nil {
		return Result{}, err
	}
	grid := BuildGrid(seed)

	shift := Shift(grid[0])
	rows := SelectRows(Downsample(grid[0]), shift)

	return Result{
		Length: cfg.Length,
		Digest: AssembleDigest(grid, rows),
		Grid:   grid,
		Shift:  shift,
		Rows:   rows,
	}, nil
}
