package model

// Package model defines domain data structures used across the app: the
// ambient sound catalog and the playback status enum. Structures are designed
// for direct binding in the UI and explicit state transitions.
