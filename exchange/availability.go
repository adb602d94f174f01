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

package exchange

import "github.com/HannaPleshko/middleware-sub004/ews"

// The backend exposes no calendar query, so availability answers are
// static placeholders until it does. The shapes are fully populated so
// clients exercising the schema get well-formed responses.

func mockUserAvailabilityResponse(req *ews.GetUserAvailabilityRequest) *ews.GetUserAvailabilityResponse {
	resp := &ews.GetUserAvailabilityResponse{}
	for range req.MailboxDataArray.MailboxData {
		resp.FreeBusyResponseArray.FreeBusyResponse = append(resp.FreeBusyResponseArray.FreeBusyResponse, ews.FreeBusyResponse{
			ResponseMessage: ews.SuccessMessage(),
			FreeBusyView: ews.FreeBusyView{
				FreeBusyViewType: ews.FreeBusyViewFreeBusy,
				CalendarEventArray: &ews.CalendarEventArray{
					CalendarEvent: []ews.CalendarEvent{
						{
							StartTime: "2023-01-02T09:00:00Z",
							EndTime:   "2023-01-02T10:00:00Z",
							BusyType:  ews.FreeBusyBusy,
						},
					},
				},
				WorkingHours: &ews.WorkingHours{
					TimeZone: ews.SerializableTimeZone{Bias: 0},
					WorkingPeriodArray: ews.WorkingPeriodArray{
						WorkingPeriod: []ews.WorkingPeriod{
							{
								DayOfWeek:          "Monday Tuesday Wednesday Thursday Friday",
								StartTimeInMinutes: 480,
								EndTimeInMinutes:   1020,
							},
						},
					},
				},
			},
		})
	}
	if req.SuggestionsViewOptions != nil {
		resp.SuggestionsResponse = &ews.SuggestionsResponse{
			ResponseMessage: ews.SuccessMessage(),
			SuggestionDayResultArray: ews.SuggestionDayResultArray{
				SuggestionDayResult: []ews.SuggestionDayResult{
					{
						Date:       "2023-01-02T00:00:00Z",
						DayQuality: ews.QualityGood,
						SuggestionArray: ews.SuggestionArray{
							Suggestion: []ews.Suggestion{
								{
									MeetingTime:       "2023-01-02T10:00:00Z",
									IsWorkTime:        true,
									SuggestionQuality: ews.QualityGood,
									AttendeeConflictDataArray: []ews.AttendeeConflictData{
										{Kind: ews.ConflictIndividual, BusyType: ews.FreeBusyFree},
									},
								},
							},
						},
					},
				},
			},
		}
	}
	return resp
}

func mockSetUserPhotoResponse() *ews.SetUserPhotoResponse {
	return &ews.SetUserPhotoResponse{ResponseMessage: ews.SuccessMessage()}
}
