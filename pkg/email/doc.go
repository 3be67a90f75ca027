// Package email sends transactional emails through Postmark and provides the
// trial lifecycle Dispatcher.
//
// EmailSender is the transport abstraction: NewPostmarkClient for production,
// NewDevSender for local development (emails written to disk). Dispatcher
// sits above the transport and owns rendering of the three lifecycle emails
// (welcome, trial expiring in N days, trial expired); which email to send is
// always the caller's decision.
package email
