// Package timezone keeps every date computation in the community's local
// timezone rather than the server's.
//
// Week boundaries, "today" checks, and report timestamps all depend on the
// calendar as the hosts experience it: a call answered at 11pm Thursday in
// the community must land in that community's week even when the server
// clock has already rolled into Friday UTC.
//
//	now := timezone.Now()                    // current time in app timezone
//	local := timezone.ToAppTime(someTime)    // convert any time
//	s := timezone.Format(t, "2006-01-02")    // format in app timezone
//	t, err := timezone.Parse("2006-01-02", "2026-08-28")
//
// The zone is configured with the APP_TIMEZONE environment variable using a
// standard IANA name ("America/New_York", "UTC") and is initialized when the
// package is imported.
package timezone
