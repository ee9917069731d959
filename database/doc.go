// Package database provides a GORM-backed driver for the transaction
// coordinator, with connection retry, pooling, and translation of engine
// errors into the webcore taxonomy.
package database
