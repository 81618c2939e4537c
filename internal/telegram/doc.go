// Package telegram provides Telegram Bot API integration for delivering event digests.
//
// The package sends formatted digest and alert messages via the Bot API using
// simple HTTP requests. Authentication requires a bot token (from @BotFather)
// and a chat ID. Delivery is best effort: every failure mode, from transport
// errors to provider-reported failures, surfaces as a returned error that
// callers are free to log and move past.
package telegram
