package funnel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polypath/polypath/geom"
)

func pts(coords [][2]float64) []geom.Point {
	out := make([]geom.Point, len(coords))
	for i, c := range coords {
		out[i] = geom.Point{X: c[0], Y: c[1]}
	}
	return out
}

func topPortalsFixture() []geom.Point {
	return pts([][2]float64{
		{-16.44, 11.03}, {-16.44, 11.03}, {-17.1, 9.13}, {-17.1, 9.13}, {-17.1, 9.13}, {-15.48, 9.55},
		{-14.36, 9.25}, {-14.36, 9.25}, {-14.36, 9.25}, {-12.82, 9.65}, {-12.82, 9.65}, {-12.82, 9.65},
		{-12.82, 9.65}, {-12.96, 11.31},
	})
}

func botPortalsFixture() []geom.Point {
	return pts([][2]float64{
		{-18.78, 10.43}, {-18.84, 9.05}, {-18.84, 9.05}, {-17.68, 7.63}, {-15.96, 7.15}, {-15.96, 7.15},
		{-15.96, 7.15}, {-14.26, 7.63}, {-12.24, 7.35}, {-12.24, 7.35}, {-9.76, 8.97}, {-9.66, 10.57},
		{-11.3, 12.79}, {-11.3, 12.79},
	})
}

func reverseTopPortalsFixture() []geom.Point {
	return pts([][2]float64{
		{-11.3, 12.79}, {-11.3, 12.79}, {-9.66, 10.57}, {-9.76, 8.97}, {-12.24, 7.35}, {-12.24, 7.35},
		{-14.26, 7.63}, {-15.96, 7.15}, {-15.96, 7.15}, {-15.96, 7.15}, {-17.68, 7.63}, {-18.84, 9.05},
		{-18.84, 9.05}, {-18.78, 10.43},
	})
}

func reverseBotPortalsFixture() []geom.Point {
	return pts([][2]float64{
		{-12.96, 11.31}, {-12.82, 9.65}, {-12.82, 9.65}, {-12.82, 9.65}, {-12.82, 9.65}, {-14.36, 9.25},
		{-14.36, 9.25}, {-14.36, 9.25}, {-15.48, 9.55}, {-17.1, 9.13}, {-17.1, 9.13}, {-17.1, 9.13},
		{-16.44, 11.03}, {-16.44, 11.03},
	})
}

func TestShortestPathFromPortalsForward(t *testing.T) {
	bot, top := botPortalsFixture(), topPortalsFixture()

	cases := []struct {
		name       string
		start, end geom.Point
		want       []geom.Point
	}{
		{
			"p1",
			geom.Point{X: -17.78, Y: 11.23}, geom.Point{X: -12.68, Y: 13.13},
			pts([][2]float64{{-17.78, 11.23}, {-17.1, 9.13}, {-14.36, 9.25}, {-12.82, 9.65}, {-12.68, 13.13}}),
		},
		{
			"p2",
			geom.Point{X: -17.72, Y: 10.96}, geom.Point{X: -12.4559, Y: 12.52711},
			pts([][2]float64{{-17.72, 10.96}, {-17.1, 9.13}, {-14.36, 9.25}, {-12.82, 9.65}, {-12.4559, 12.52711}}),
		},
		{
			"p3",
			geom.Point{X: -17.33132, Y: 10.97701}, geom.Point{X: -11.82962, Y: 12.69731},
			pts([][2]float64{{-17.33132, 10.97701}, {-17.1, 9.13}, {-14.36, 9.25}, {-12.82, 9.65}, {-11.82962, 12.69731}}),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := shortestPathFromPortals(bot, top, c.start, c.end)
			require.Equal(t, c.want, got)
		})
	}
}

func TestShortestPathFromPortalsReverse(t *testing.T) {
	bot, top := reverseBotPortalsFixture(), reverseTopPortalsFixture()

	cases := []struct {
		name       string
		start, end geom.Point
		want       []geom.Point
	}{
		{
			"p4",
			geom.Point{X: -12.68, Y: 13.13}, geom.Point{X: -17.78, Y: 11.23},
			pts([][2]float64{{-12.68, 13.13}, {-12.82, 9.65}, {-14.36, 9.25}, {-17.1, 9.13}, {-17.78, 11.23}}),
		},
		{
			"p5",
			geom.Point{X: -11.82962, Y: 12.69731}, geom.Point{X: -17.33132, Y: 10.97701},
			pts([][2]float64{{-11.82962, 12.69731}, {-12.82, 9.65}, {-14.36, 9.25}, {-17.1, 9.13}, {-17.33132, 10.97701}}),
		},
		{
			"p6",
			geom.Point{X: -12.75468, Y: 11.75601}, geom.Point{X: -18.17524, Y: 10.7498},
			pts([][2]float64{{-12.75468, 11.75601}, {-12.82, 9.65}, {-14.36, 9.25}, {-17.1, 9.13}, {-18.17524, 10.7498}}),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := shortestPathFromPortals(bot, top, c.start, c.end)
			require.Equal(t, c.want, got)
		})
	}
}

func TestNumConsecutiveEqualToStart(t *testing.T) {
	require.Equal(t, 2, numConsecutiveEqualToStart(pts([][2]float64{{1, 1}, {1, 1}, {1, 1}, {3, 3}, {2, 2}})))
	require.Equal(t, 0, numConsecutiveEqualToStart(pts([][2]float64{{1, 1}, {2, 2}, {3, 3}, {1, 1}, {1, 1}})))
	require.Equal(t, 1, numConsecutiveEqualToStart(pts([][2]float64{{5, 5}, {5, 5}, {1, 1}, {5, 5}, {5, 5}})))
	require.Equal(t, 3, numConsecutiveEqualToStart(pts([][2]float64{{7, 7}, {7, 7}, {7, 7}, {7, 7}, {1, 1}, {2, 2}})))
}
