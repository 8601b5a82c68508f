package entity

// Ownership predicates used before every write.

func CanModifyPost(p *Post, actorID string) bool {
	return p != nil && actorID != "" && p.User == actorID
}

func CanModifyComment(c *Comment, actorID string) bool {
	return c != nil && actorID != "" && c.User == actorID
}

func CanModifyProfile(p *Profile, actorID string) bool {
	return p != nil && actorID != "" && p.User.ID == actorID
}

// Match predicates for sub-collection lookups.

func LikedBy(userID string) func(Like) bool {
	return func(l Like) bool { return l.User == userID }
}

func CommentWithID(id string) func(Comment) bool {
	return func(c Comment) bool { return c.ID == id }
}

func ExperienceWithID(id string) func(Experience) bool {
	return func(e Experience) bool { return e.ID == id }
}

func EducationWithID(id string) func(Education) bool {
	return func(e Education) bool { return e.ID == id }
}
