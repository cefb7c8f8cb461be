package episodes

// Package episodes implements the episode data client built on top of the
// public GraphQL API (via github.com/hasura/go-graphql-client). It manages
// paginated queries, supersession of in-flight requests, an in-memory page
// cache, and result propagation to the UI.
