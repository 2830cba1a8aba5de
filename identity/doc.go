// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity resolves the current device user.

Resolution order:

 1. the stored "currentUser" record
 2. a plain user built on the stored "pollUserId" identity
 3. a freshly minted identity, saved as "pollUserId"

The identity is stable for the device. Admin login and email verification
change the role or attach an email, never the id, and Logout drops back to a
plain user with the same id.

The admin check is a static credential comparison. It is not a security
boundary.
*/
package identity
