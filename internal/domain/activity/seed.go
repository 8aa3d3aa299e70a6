package activity

// DefaultDirectory returns the seed set loaded into the store at startup.
// The key set and non-roster fields never change after seeding; only the
// participant lists are mutated, by Signup and Unregister.
func DefaultDirectory() []Activity {
	return []Activity{
		{
			Name:            "Basketball",
			Description:     "Competitive basketball training and inter-school games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Tennis lessons and friendly matches on the school courts",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"noah@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore drawing, painting, and mixed media projects",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Acting, stagecraft, and the annual school play",
			Schedule:        "Mondays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "thomas@mergington.edu"},
		},
		{
			Name:            "Math Club",
			Description:     "Problem solving, math olympiad prep, and puzzles",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Robotics Club",
			Description:     "Design, build, and program robots for competitions",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"mia@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
