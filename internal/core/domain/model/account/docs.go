// Package account provides the identity-side domain entities of the delivery
// tracking system: the closed Role variant and the Vendor and DeliveryPartner
// entities linked 1:1 to authenticated accounts.
//
// Authentication itself is an external collaborator; this package only models
// what the application needs to authorize lifecycle operations: who an actor
// is and which role it carries. Entities are created at signup time and never
// mutated by the order lifecycle.
package account
