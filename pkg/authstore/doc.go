// Package authstore holds the client-side authentication state: the signed-in
// user, a login attempt counter and remember-me persistence.
//
// The store is an in-memory snapshot guarded by a mutex. Writes go through
// Login, Logout and the attempt counters; reads take a Snapshot copy so
// callers never observe a partially applied change. Subscribers receive a
// fresh snapshot after every state change, which is how UI layers stay in
// sync without polling.
//
// # Persistence
//
// Persistence is selective. A login with remember-me saves the user and the
// authenticated flag through a Persister; a login without it wipes whatever
// was saved so closing the app ends the session. The attempt counter and its
// timestamp are never persisted. Saved state is versioned: a blob with an
// unknown version hydrates to an empty, signed-out store instead of failing.
//
// # Usage
//
//	store, err := authstore.New(authstore.NewFilePersister(path))
//	if err != nil { ... }
//
//	unsubscribe := store.Subscribe(func(s authstore.Snapshot) {
//	    render(s)
//	})
//	defer unsubscribe()
//
//	if err := store.Login(user, true); err != nil { ... }
package authstore
