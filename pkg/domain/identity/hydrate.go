package identity

// Hydration constructors rebuild value objects from already-validated stored
// data. They bypass validation and must only be used by repositories and
// test fixtures.

// NationalIDCodeFromData rebuilds a NationalIDCode from stored data.
func NationalIDCodeFromData(v string) NationalIDCode { return NationalIDCode{value: v} }

// EmailAddressFromData rebuilds an EmailAddress from stored data.
func EmailAddressFromData(v string) EmailAddress { return EmailAddress{value: v} }

// PhoneNumberFromData rebuilds a PhoneNumber from stored data.
func PhoneNumberFromData(v string) PhoneNumber { return PhoneNumber{value: v} }
