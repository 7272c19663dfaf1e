package vmem

import "github.com/nebulous-pages/vmem/internal/memword"

// Config is the runtime configuration of a Translator: geometry that was a
// set of compile-time constants in the original design is now a value
// passed to New, so a single process can run translators of different
// shapes (the synthetic two-word pages used in tests alongside a
// production-sized one).
type Config = memword.Config
