package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// SessionCookieName is the browser cookie holding the signed session token.
const SessionCookieName = "scriptoria_session"

// HistoryDisplayLimit is how many prior generations the interactive
// surfaces show. Stores never apply it.
const HistoryDisplayLimit = 5
