// Package alerts exposes the alert bus over HTTP.
//
// Every browser region opens GET /stream, a datastar event stream that mounts
// an alertview.View for the (client, group) pair and re-renders the region
// after each change. Close buttons post to /dismiss, the host page reports
// route changes to /navigate, and producers raise alerts through /publish.
// Live views are kept in a bounded LRU; evicting one tears it down and ends
// its stream.
package alerts
