//  This file is part of the eliona project.
//  Copyright © 2022 LEICOM iTEC AG. All Rights Reserved.
//  ______ _ _
// |  ____| (_)
// | |__  | |_  ___  _ __   __ _
// |  __| | | |/ _ \| '_ \ / _` |
// | |____| | | (_) | | | | (_| |
// |______|_|_|\___/|_| |_|\__,_|
//
//  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING
//  BUT NOT LIMITED  TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
//  NON INFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
//  DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ews

import "encoding/xml"

// GetUserAvailabilityRequest queries free/busy data and meeting-time
// suggestions for a set of attendees.
type GetUserAvailabilityRequest struct {
	MailboxDataArray       MailboxDataArray        `xml:"MailboxDataArray"`
	FreeBusyViewOptions    *FreeBusyViewOptions    `xml:"FreeBusyViewOptions,omitempty"`
	SuggestionsViewOptions *SuggestionsViewOptions `xml:"SuggestionsViewOptions,omitempty"`
}

// MailboxDataArray lists the attendees of an availability query.
type MailboxDataArray struct {
	MailboxData []MailboxData `xml:"MailboxData"`
}

// MailboxData is one attendee of an availability query.
type MailboxData struct {
	Email            EmailAddress        `xml:"Email"`
	AttendeeType     MeetingAttendeeType `xml:"AttendeeType"`
	ExcludeConflicts bool                `xml:"ExcludeConflicts"`
}

// FreeBusyViewOptions selects the requested free/busy detail level.
type FreeBusyViewOptions struct {
	TimeWindow                      TimeWindow       `xml:"TimeWindow"`
	MergedFreeBusyIntervalInMinutes int              `xml:"MergedFreeBusyIntervalInMinutes,omitempty"`
	RequestedView                   FreeBusyViewType `xml:"RequestedView,omitempty"`
}

// SuggestionsViewOptions tunes the meeting-time suggestion search.
type SuggestionsViewOptions struct {
	GoodThreshold                  int               `xml:"GoodThreshold,omitempty"`
	MaximumResultsByDay            int               `xml:"MaximumResultsByDay,omitempty"`
	MaximumNonWorkHourResultsByDay int               `xml:"MaximumNonWorkHourResultsByDay,omitempty"`
	MeetingDurationInMinutes       int               `xml:"MeetingDurationInMinutes,omitempty"`
	MinimumSuggestionQuality       SuggestionQuality `xml:"MinimumSuggestionQuality,omitempty"`
	DetailedSuggestionsWindow      *TimeWindow       `xml:"DetailedSuggestionsWindow,omitempty"`
}

// TimeWindow bounds an availability query.
type TimeWindow struct {
	StartTime string `xml:"StartTime"`
	EndTime   string `xml:"EndTime"`
}

// GetUserAvailabilityResponse carries per-attendee free/busy views and the
// suggestion days.
type GetUserAvailabilityResponse struct {
	XMLName               xml.Name             `xml:"GetUserAvailabilityResponse"`
	FreeBusyResponseArray FreeBusyResponseArray `xml:"FreeBusyResponseArray"`
	SuggestionsResponse   *SuggestionsResponse  `xml:"SuggestionsResponse,omitempty"`
}

// FreeBusyResponseArray wraps the per-attendee responses.
type FreeBusyResponseArray struct {
	FreeBusyResponse []FreeBusyResponse `xml:"FreeBusyResponse"`
}

// FreeBusyResponse is one attendee's free/busy view.
type FreeBusyResponse struct {
	ResponseMessage ResponseMessage `xml:"ResponseMessage"`
	FreeBusyView    FreeBusyView    `xml:"FreeBusyView"`
}

// FreeBusyView is the availability data of a single attendee.
type FreeBusyView struct {
	FreeBusyViewType   FreeBusyViewType    `xml:"FreeBusyViewType"`
	MergedFreeBusy     string              `xml:"MergedFreeBusy,omitempty"`
	CalendarEventArray *CalendarEventArray `xml:"CalendarEventArray,omitempty"`
	WorkingHours       *WorkingHours       `xml:"WorkingHours,omitempty"`
}

// CalendarEventArray wraps the per-event detail rows.
type CalendarEventArray struct {
	CalendarEvent []CalendarEvent `xml:"CalendarEvent"`
}

// CalendarEvent is one busy interval in a free/busy view.
type CalendarEvent struct {
	StartTime            string                `xml:"StartTime"`
	EndTime              string                `xml:"EndTime"`
	BusyType             LegacyFreeBusyStatus  `xml:"BusyType"`
	CalendarEventDetails *CalendarEventDetails `xml:"CalendarEventDetails,omitempty"`
}

// CalendarEventDetails adds item-level detail to a busy interval.
type CalendarEventDetails struct {
	ID            string `xml:"ID,omitempty"`
	Subject       string `xml:"Subject,omitempty"`
	Location      string `xml:"Location,omitempty"`
	IsMeeting     bool   `xml:"IsMeeting"`
	IsRecurring   bool   `xml:"IsRecurring"`
	IsException   bool   `xml:"IsException"`
	IsReminderSet bool   `xml:"IsReminderSet"`
	IsPrivate     bool   `xml:"IsPrivate"`
}

// WorkingHours describes an attendee's working-hours window.
type WorkingHours struct {
	TimeZone           SerializableTimeZone `xml:"TimeZone"`
	WorkingPeriodArray WorkingPeriodArray   `xml:"WorkingPeriodArray"`
}

// SerializableTimeZone is the EWS time-zone structure.
type SerializableTimeZone struct {
	Bias         int           `xml:"Bias"`
	StandardTime *TimeZoneTime `xml:"StandardTime,omitempty"`
	DaylightTime *TimeZoneTime `xml:"DaylightTime,omitempty"`
}

// TimeZoneTime is one leg of a time-zone transition rule.
type TimeZoneTime struct {
	Bias      int       `xml:"Bias"`
	Time      string    `xml:"Time"`
	DayOrder  int       `xml:"DayOrder"`
	Month     int       `xml:"Month"`
	DayOfWeek DayOfWeek `xml:"DayOfWeek"`
}

// WorkingPeriodArray wraps the working periods.
type WorkingPeriodArray struct {
	WorkingPeriod []WorkingPeriod `xml:"WorkingPeriod"`
}

// WorkingPeriod is one contiguous working-hours block.
type WorkingPeriod struct {
	DayOfWeek          string `xml:"DayOfWeek"`
	StartTimeInMinutes int    `xml:"StartTimeInMinutes"`
	EndTimeInMinutes   int    `xml:"EndTimeInMinutes"`
}

// SuggestionsResponse carries the day-by-day meeting suggestions.
type SuggestionsResponse struct {
	ResponseMessage          ResponseMessage          `xml:"ResponseMessage"`
	SuggestionDayResultArray SuggestionDayResultArray `xml:"SuggestionDayResultArray"`
}

// SuggestionDayResultArray wraps the per-day results.
type SuggestionDayResultArray struct {
	SuggestionDayResult []SuggestionDayResult `xml:"SuggestionDayResult"`
}

// SuggestionDayResult groups the suggestions of one day.
type SuggestionDayResult struct {
	Date            string            `xml:"Date"`
	DayQuality      SuggestionQuality `xml:"DayQuality"`
	SuggestionArray SuggestionArray   `xml:"SuggestionArray"`
}

// SuggestionArray wraps the suggestions of a day.
type SuggestionArray struct {
	Suggestion []Suggestion `xml:"Suggestion"`
}

// Suggestion is one proposed meeting time.
type Suggestion struct {
	MeetingTime               string                 `xml:"MeetingTime"`
	IsWorkTime                bool                   `xml:"IsWorkTime"`
	SuggestionQuality         SuggestionQuality      `xml:"SuggestionQuality"`
	AttendeeConflictDataArray []AttendeeConflictData `xml:"AttendeeConflictDataArray>AttendeeConflictData"`
}

// ConflictKind discriminates the attendee-conflict variants.
type ConflictKind string

const (
	ConflictUnknown     ConflictKind = "Unknown"
	ConflictTooBigGroup ConflictKind = "TooBigGroup"
	ConflictIndividual  ConflictKind = "Individual"
	ConflictGroup       ConflictKind = "Group"
)

// AttendeeConflictData is a tagged union over the EWS conflict-data
// variants. Kind selects the wire element; only the fields of the selected
// variant are emitted.
type AttendeeConflictData struct {
	Kind ConflictKind

	// Individual variant.
	BusyType LegacyFreeBusyStatus

	// Group variant.
	NumberOfMembers             int
	NumberOfMembersAvailable    int
	NumberOfMembersWithConflict int
	NumberOfMembersWithNoData   int
}

// MarshalXML emits the element the discriminant selects.
func (c AttendeeConflictData) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	switch c.Kind {
	case ConflictIndividual:
		v := struct {
			XMLName  xml.Name             `xml:"IndividualAttendeeConflictData"`
			BusyType LegacyFreeBusyStatus `xml:"BusyType"`
		}{BusyType: c.BusyType}
		return e.Encode(v)
	case ConflictGroup:
		v := struct {
			XMLName                     xml.Name `xml:"GroupAttendeeConflictData"`
			NumberOfMembers             int      `xml:"NumberOfMembers"`
			NumberOfMembersAvailable    int      `xml:"NumberOfMembersAvailable"`
			NumberOfMembersWithConflict int      `xml:"NumberOfMembersWithConflict"`
			NumberOfMembersWithNoData   int      `xml:"NumberOfMembersWithNoData"`
		}{
			NumberOfMembers:             c.NumberOfMembers,
			NumberOfMembersAvailable:    c.NumberOfMembersAvailable,
			NumberOfMembersWithConflict: c.NumberOfMembersWithConflict,
			NumberOfMembersWithNoData:   c.NumberOfMembersWithNoData,
		}
		return e.Encode(v)
	case ConflictTooBigGroup:
		v := struct {
			XMLName xml.Name `xml:"TooBigGroupAttendeeConflictData"`
		}{}
		return e.Encode(v)
	default:
		v := struct {
			XMLName xml.Name `xml:"UnknownAttendeeConflictData"`
		}{}
		return e.Encode(v)
	}
}
