package channel

type Channel string

// FloorEvents carries entity-change notifications between staff clients.
// Every dashboard instance subscribes; the publisher is whichever instance
// handled the write (last writer wins on concurrent edits).
const FloorEvents Channel = "tabletally:floor-events"
