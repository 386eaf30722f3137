package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerWeeklyRepository --dir ../domain/weekly --output domain/weekly --outpkg weeklymock --filename player_weekly_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DefenseRepository --dir ../domain/weekly --output domain/weekly --outpkg weeklymock --filename defense_repository_mock.go
