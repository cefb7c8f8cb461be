package model

// Package model defines domain data structures used across the app: episodes,
// pagination metadata, and fetch status enums. Structures are designed for
// direct rendering in the UI and explicit state transitions.
