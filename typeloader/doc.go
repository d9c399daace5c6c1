// Package typeloader resolves type names to reflect.Type handles.
//
// The builder never looks types up globally: it is handed a Loader and calls
// it whenever a caller declares a class, converter or allowed error by name.
// Registry is the stock Loader. Types are registered explicitly and can then
// be found by their canonical name ("github.com/acme/store.Order"), by a
// package suffix ("store.Order") or, when unambiguous, by bare name ("Order").
package typeloader
