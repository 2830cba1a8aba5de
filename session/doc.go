// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the state of one device: its polls, its whitelist and
the current user.

A Session is opened once per process and shared by all request handlers.
Operations are serialized with a mutex. Every change is saved to the store
before the in-memory copy is swapped, so a failed write leaves the session
as it was.

Admin operations (create, edit, delete, status, whitelist upload and clear)
return ErrAdminRequired unless the current user has logged in as admin.
*/
package session
