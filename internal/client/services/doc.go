// Package services holds the client-side state layer of collabdocs.
//
// SessionStore owns the credential and the authenticated user's profile and
// persists both in the local metadata store. DocumentStore and FriendStore
// mirror server-owned collections and apply server responses to their local
// caches; SharingService, UserDirectory and HistoryService wrap the remaining
// endpoints. All types are safe for concurrent use.
package services
