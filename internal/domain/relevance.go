package domain

// RelevantEvents returns the events whose impact radius covers the query
// point, each annotated with its distance. The inclusion test is boundary
// inclusive: distance exactly equal to the radius counts. Input events are
// copied into the result, never mutated.
func RelevantEvents(query Coordinate, events []Event) []RelevantEvent {
	var relevant []RelevantEvent
	for _, event := range events {
		distance := Haversine(query, event.Location.Coordinate)
		if distance > event.Impact.RadiusMeters {
			continue
		}
		relevant = append(relevant, RelevantEvent{
			Event:          event,
			DistanceMeters: round2(distance),
			DistanceKM:     round2(distance / 1000),
		})
	}
	return relevant
}

// PartitionBySentiment splits relevant events into POSITIVE and NEGATIVE
// subsets. Events with any other sentiment value land in neither subset;
// callers can detect them by comparing lengths (the engine logs and counts
// them so a future NEUTRAL class does not disappear silently).
func PartitionBySentiment(events []RelevantEvent) (positive, negative []RelevantEvent) {
	for _, event := range events {
		switch event.Impact.Sentiment {
		case SentimentPositive:
			positive = append(positive, event)
		case SentimentNegative:
			negative = append(negative, event)
		}
	}
	return positive, negative
}
