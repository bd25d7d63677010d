// meta/meta.go
package meta

// BOARD_SIZE is the default board width and height.
const BOARD_SIZE = 3

// MAX_BOARD_SIZE bounds configured boards. Exhaustive search on an empty 4x4
// board does not finish in practice.
const MAX_BOARD_SIZE = 3

// MAX_EMPTY_CELLS bounds the positions the agent server accepts.
const MAX_EMPTY_CELLS = 9

// MAX_REQUEST_BYTES bounds the request bodies the agent server reads.
const MAX_REQUEST_BYTES = 4096

// GAMES is the default number of games per run.
const GAMES = 1

// SEED seeds the random opponent.
const SEED = 1

// PORT is the default agent server port.
const PORT = 8080
