// Package domain contains the core business entities and value objects of the
// task tracker: users, tasks and their statuses, and the validation errors that
// describe invalid input. Records here are plain data; persistence lives in the
// store implementations and business rules in the service layer.
package domain
