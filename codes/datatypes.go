package codes

// NarrativeStatus is the status of a resource narrative.
// Code system: http://hl7.org/fhir/narrative-status
type NarrativeStatus string

const (
	NarrativeStatusGenerated  NarrativeStatus = "generated"
	NarrativeStatusExtensions NarrativeStatus = "extensions"
	NarrativeStatusAdditional NarrativeStatus = "additional"
	NarrativeStatusEmpty      NarrativeStatus = "empty"
)

// NarrativeStatusSet is the closed set of NarrativeStatus codes.
var NarrativeStatusSet = NewSet("NarrativeStatus", "http://hl7.org/fhir/narrative-status",
	NarrativeStatusGenerated, NarrativeStatusExtensions, NarrativeStatusAdditional, NarrativeStatusEmpty,
)

// ParseNarrativeStatus returns the NarrativeStatus for s, or ("", false) if s is not a known code.
func ParseNarrativeStatus(s string) (NarrativeStatus, bool) { return NarrativeStatusSet.Parse(s) }

func (c NarrativeStatus) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c NarrativeStatus) Known() bool { return NarrativeStatusSet.Contains(c) }

// System returns the code system URL.
func (NarrativeStatus) System() string { return NarrativeStatusSet.System() }

// QuantityComparator says how a Quantity value should be understood.
// Code system: http://hl7.org/fhir/quantity-comparator
type QuantityComparator string

const (
	QuantityComparatorLessThan       QuantityComparator = "<"
	QuantityComparatorLessOrEqual    QuantityComparator = "<="
	QuantityComparatorGreaterOrEqual QuantityComparator = ">="
	QuantityComparatorGreaterThan    QuantityComparator = ">"
)

// QuantityComparators is the closed set of QuantityComparator codes.
var QuantityComparators = NewSet("QuantityComparator", "http://hl7.org/fhir/quantity-comparator",
	QuantityComparatorLessThan, QuantityComparatorLessOrEqual, QuantityComparatorGreaterOrEqual, QuantityComparatorGreaterThan,
)

// ParseQuantityComparator returns the QuantityComparator for s, or ("", false) if s is not a known code.
func ParseQuantityComparator(s string) (QuantityComparator, bool) { return QuantityComparators.Parse(s) }

func (c QuantityComparator) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c QuantityComparator) Known() bool { return QuantityComparators.Contains(c) }

// System returns the code system URL.
func (QuantityComparator) System() string { return QuantityComparators.System() }

// IdentifierUse is the purpose of an identifier.
// Code system: http://hl7.org/fhir/identifier-use
type IdentifierUse string

const (
	IdentifierUseUsual     IdentifierUse = "usual"
	IdentifierUseOfficial  IdentifierUse = "official"
	IdentifierUseTemp      IdentifierUse = "temp"
	IdentifierUseSecondary IdentifierUse = "secondary"
	IdentifierUseOld       IdentifierUse = "old"
)

// IdentifierUses is the closed set of IdentifierUse codes.
var IdentifierUses = NewSet("IdentifierUse", "http://hl7.org/fhir/identifier-use",
	IdentifierUseUsual, IdentifierUseOfficial, IdentifierUseTemp, IdentifierUseSecondary,
	IdentifierUseOld,
)

// ParseIdentifierUse returns the IdentifierUse for s, or ("", false) if s is not a known code.
func ParseIdentifierUse(s string) (IdentifierUse, bool) { return IdentifierUses.Parse(s) }

func (c IdentifierUse) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c IdentifierUse) Known() bool { return IdentifierUses.Contains(c) }

// System returns the code system URL.
func (IdentifierUse) System() string { return IdentifierUses.System() }

// NameUse is the purpose of a human name.
// Code system: http://hl7.org/fhir/name-use
type NameUse string

const (
	NameUseUsual     NameUse = "usual"
	NameUseOfficial  NameUse = "official"
	NameUseTemp      NameUse = "temp"
	NameUseNickname  NameUse = "nickname"
	NameUseAnonymous NameUse = "anonymous"
	NameUseOld       NameUse = "old"
	NameUseMaiden    NameUse = "maiden"
)

// NameUses is the closed set of NameUse codes.
var NameUses = NewSet("NameUse", "http://hl7.org/fhir/name-use",
	NameUseUsual, NameUseOfficial, NameUseTemp, NameUseNickname,
	NameUseAnonymous, NameUseOld, NameUseMaiden,
)

// ParseNameUse returns the NameUse for s, or ("", false) if s is not a known code.
func ParseNameUse(s string) (NameUse, bool) { return NameUses.Parse(s) }

func (c NameUse) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c NameUse) Known() bool { return NameUses.Contains(c) }

// System returns the code system URL.
func (NameUse) System() string { return NameUses.System() }

// ContactPointSystem is the telecommunications form of a contact point.
// Code system: http://hl7.org/fhir/contact-point-system
type ContactPointSystem string

const (
	ContactPointSystemPhone ContactPointSystem = "phone"
	ContactPointSystemFax   ContactPointSystem = "fax"
	ContactPointSystemEmail ContactPointSystem = "email"
	ContactPointSystemPager ContactPointSystem = "pager"
	ContactPointSystemUrl   ContactPointSystem = "url"
	ContactPointSystemSms   ContactPointSystem = "sms"
	ContactPointSystemOther ContactPointSystem = "other"
)

// ContactPointSystems is the closed set of ContactPointSystem codes.
var ContactPointSystems = NewSet("ContactPointSystem", "http://hl7.org/fhir/contact-point-system",
	ContactPointSystemPhone, ContactPointSystemFax, ContactPointSystemEmail, ContactPointSystemPager,
	ContactPointSystemUrl, ContactPointSystemSms, ContactPointSystemOther,
)

// ParseContactPointSystem returns the ContactPointSystem for s, or ("", false) if s is not a known code.
func ParseContactPointSystem(s string) (ContactPointSystem, bool) { return ContactPointSystems.Parse(s) }

func (c ContactPointSystem) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c ContactPointSystem) Known() bool { return ContactPointSystems.Contains(c) }

// System returns the code system URL.
func (ContactPointSystem) System() string { return ContactPointSystems.System() }

// ContactPointUse is the purpose of a contact point.
// Code system: http://hl7.org/fhir/contact-point-use
type ContactPointUse string

const (
	ContactPointUseHome   ContactPointUse = "home"
	ContactPointUseWork   ContactPointUse = "work"
	ContactPointUseTemp   ContactPointUse = "temp"
	ContactPointUseOld    ContactPointUse = "old"
	ContactPointUseMobile ContactPointUse = "mobile"
)

// ContactPointUses is the closed set of ContactPointUse codes.
var ContactPointUses = NewSet("ContactPointUse", "http://hl7.org/fhir/contact-point-use",
	ContactPointUseHome, ContactPointUseWork, ContactPointUseTemp, ContactPointUseOld,
	ContactPointUseMobile,
)

// ParseContactPointUse returns the ContactPointUse for s, or ("", false) if s is not a known code.
func ParseContactPointUse(s string) (ContactPointUse, bool) { return ContactPointUses.Parse(s) }

func (c ContactPointUse) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c ContactPointUse) Known() bool { return ContactPointUses.Contains(c) }

// System returns the code system URL.
func (ContactPointUse) System() string { return ContactPointUses.System() }

// AddressUse is the purpose of an address.
// Code system: http://hl7.org/fhir/address-use
type AddressUse string

const (
	AddressUseHome    AddressUse = "home"
	AddressUseWork    AddressUse = "work"
	AddressUseTemp    AddressUse = "temp"
	AddressUseOld     AddressUse = "old"
	AddressUseBilling AddressUse = "billing"
)

// AddressUses is the closed set of AddressUse codes.
var AddressUses = NewSet("AddressUse", "http://hl7.org/fhir/address-use",
	AddressUseHome, AddressUseWork, AddressUseTemp, AddressUseOld,
	AddressUseBilling,
)

// ParseAddressUse returns the AddressUse for s, or ("", false) if s is not a known code.
func ParseAddressUse(s string) (AddressUse, bool) { return AddressUses.Parse(s) }

func (c AddressUse) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c AddressUse) Known() bool { return AddressUses.Contains(c) }

// System returns the code system URL.
func (AddressUse) System() string { return AddressUses.System() }

// AddressType distinguishes physical and postal addresses.
// Code system: http://hl7.org/fhir/address-type
type AddressType string

const (
	AddressTypePostal   AddressType = "postal"
	AddressTypePhysical AddressType = "physical"
	AddressTypeBoth     AddressType = "both"
)

// AddressTypes is the closed set of AddressType codes.
var AddressTypes = NewSet("AddressType", "http://hl7.org/fhir/address-type",
	AddressTypePostal, AddressTypePhysical, AddressTypeBoth,
)

// ParseAddressType returns the AddressType for s, or ("", false) if s is not a known code.
func ParseAddressType(s string) (AddressType, bool) { return AddressTypes.Parse(s) }

func (c AddressType) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c AddressType) Known() bool { return AddressTypes.Contains(c) }

// System returns the code system URL.
func (AddressType) System() string { return AddressTypes.System() }

// UnitsOfTime is a UCUM unit of time used by Timing.
// Code system: http://unitsofmeasure.org
type UnitsOfTime string

const (
	UnitsOfTimeSecond UnitsOfTime = "s"
	UnitsOfTimeMinute UnitsOfTime = "min"
	UnitsOfTimeHour   UnitsOfTime = "h"
	UnitsOfTimeDay    UnitsOfTime = "d"
	UnitsOfTimeWeek   UnitsOfTime = "wk"
	UnitsOfTimeMonth  UnitsOfTime = "mo"
	UnitsOfTimeYear   UnitsOfTime = "a"
)

// UnitsOfTimeSet is the closed set of UnitsOfTime codes.
var UnitsOfTimeSet = NewSet("UnitsOfTime", "http://unitsofmeasure.org",
	UnitsOfTimeSecond, UnitsOfTimeMinute, UnitsOfTimeHour, UnitsOfTimeDay,
	UnitsOfTimeWeek, UnitsOfTimeMonth, UnitsOfTimeYear,
)

// ParseUnitsOfTime returns the UnitsOfTime for s, or ("", false) if s is not a known code.
func ParseUnitsOfTime(s string) (UnitsOfTime, bool) { return UnitsOfTimeSet.Parse(s) }

func (c UnitsOfTime) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c UnitsOfTime) Known() bool { return UnitsOfTimeSet.Contains(c) }

// System returns the code system URL.
func (UnitsOfTime) System() string { return UnitsOfTimeSet.System() }

// DaysOfWeek is a day of the week.
// Code system: http://hl7.org/fhir/days-of-week
type DaysOfWeek string

const (
	DaysOfWeekMonday    DaysOfWeek = "mon"
	DaysOfWeekTuesday   DaysOfWeek = "tue"
	DaysOfWeekWednesday DaysOfWeek = "wed"
	DaysOfWeekThursday  DaysOfWeek = "thu"
	DaysOfWeekFriday    DaysOfWeek = "fri"
	DaysOfWeekSaturday  DaysOfWeek = "sat"
	DaysOfWeekSunday    DaysOfWeek = "sun"
)

// DaysOfWeekSet is the closed set of DaysOfWeek codes.
var DaysOfWeekSet = NewSet("DaysOfWeek", "http://hl7.org/fhir/days-of-week",
	DaysOfWeekMonday, DaysOfWeekTuesday, DaysOfWeekWednesday, DaysOfWeekThursday,
	DaysOfWeekFriday, DaysOfWeekSaturday, DaysOfWeekSunday,
)

// ParseDaysOfWeek returns the DaysOfWeek for s, or ("", false) if s is not a known code.
func ParseDaysOfWeek(s string) (DaysOfWeek, bool) { return DaysOfWeekSet.Parse(s) }

func (c DaysOfWeek) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c DaysOfWeek) Known() bool { return DaysOfWeekSet.Contains(c) }

// System returns the code system URL.
func (DaysOfWeek) System() string { return DaysOfWeekSet.System() }

// EventTiming is a real world event relating to the schedule.
// Code system: http://hl7.org/fhir/event-timing
type EventTiming string

const (
	EventTimingMorn      EventTiming = "MORN"
	EventTimingMornEarly EventTiming = "MORN.early"
	EventTimingMornLate  EventTiming = "MORN.late"
	EventTimingNoon      EventTiming = "NOON"
	EventTimingAft       EventTiming = "AFT"
	EventTimingAftEarly  EventTiming = "AFT.early"
	EventTimingAftLate   EventTiming = "AFT.late"
	EventTimingEve       EventTiming = "EVE"
	EventTimingEveEarly  EventTiming = "EVE.early"
	EventTimingEveLate   EventTiming = "EVE.late"
	EventTimingNight     EventTiming = "NIGHT"
	EventTimingPhs       EventTiming = "PHS"
	EventTimingHs        EventTiming = "HS"
	EventTimingWake      EventTiming = "WAKE"
	EventTimingC         EventTiming = "C"
	EventTimingCm        EventTiming = "CM"
	EventTimingCd        EventTiming = "CD"
	EventTimingCv        EventTiming = "CV"
	EventTimingAc        EventTiming = "AC"
	EventTimingAcm       EventTiming = "ACM"
	EventTimingAcd       EventTiming = "ACD"
	EventTimingAcv       EventTiming = "ACV"
	EventTimingPc        EventTiming = "PC"
	EventTimingPcm       EventTiming = "PCM"
	EventTimingPcd       EventTiming = "PCD"
	EventTimingPcv       EventTiming = "PCV"
)

// EventTimings is the closed set of EventTiming codes.
var EventTimings = NewSet("EventTiming", "http://hl7.org/fhir/event-timing",
	EventTimingMorn, EventTimingMornEarly, EventTimingMornLate, EventTimingNoon,
	EventTimingAft, EventTimingAftEarly, EventTimingAftLate, EventTimingEve,
	EventTimingEveEarly, EventTimingEveLate, EventTimingNight, EventTimingPhs,
	EventTimingHs, EventTimingWake, EventTimingC, EventTimingCm,
	EventTimingCd, EventTimingCv, EventTimingAc, EventTimingAcm,
	EventTimingAcd, EventTimingAcv, EventTimingPc, EventTimingPcm,
	EventTimingPcd, EventTimingPcv,
)

// ParseEventTiming returns the EventTiming for s, or ("", false) if s is not a known code.
func ParseEventTiming(s string) (EventTiming, bool) { return EventTimings.Parse(s) }

func (c EventTiming) String() string { return string(c) }

// Known reports whether c is in the closed set.
func (c EventTiming) Known() bool { return EventTimings.Contains(c) }

// System returns the code system URL.
func (EventTiming) System() string { return EventTimings.System() }
