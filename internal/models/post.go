package models

// PostStatus is the visibility state of a marketplace listing.
type PostStatus string

const (
	PostStatusOpen   PostStatus = "OPEN"
	PostStatusClosed PostStatus = "CLOSED"
)

// PostKind names the table a listing lives in.
type PostKind string

const (
	PostKindPackage PostKind = "package_posts"
	PostKindTrip    PostKind = "trip_posts"
)
