// Package timezone pins every timestamp the service produces to one location.
//
// Usage Examples:
//
//  1. Current time and calendar day:
//     now := timezone.Now()
//     today := timezone.Today()                // midnight in the app timezone
//
//  2. Departure dates arrive as calendar dates:
//     day, err := timezone.Parse("2006-01-02", "2026-12-24")
//
//  3. Formatting for responses:
//     formatted := timezone.Format(booking.CreatedAt, time.RFC3339)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// (default Asia/Ho_Chi_Minh) and is initialized when the package is imported.
package timezone
